package handler

import (
	"net/http"
	"strings"

	"github.com/doclibhq/doclib-be/middleware"
	"github.com/doclibhq/doclib-be/service"
	"github.com/doclibhq/doclib-be/types"
	"github.com/gin-gonic/gin"
)

type SynthesisHandler struct {
	library   service.LibraryService
	synthesis service.SynthesisService
}

func NewSynthesisHandler(library service.LibraryService, synthesis service.SynthesisService) *SynthesisHandler {
	return &SynthesisHandler{
		library:   library,
		synthesis: synthesis,
	}
}

// HandleSynthesize renders a new document from facts and selected sources.
// The precondition guard lives here: the engine itself is never invoked with
// empty facts or an empty source set.
func (h *SynthesisHandler) HandleSynthesize(c *gin.Context) {
	var req types.SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	if strings.TrimSpace(req.Facts) == "" || len(req.SourceDocumentIDs) == 0 {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Please enter facts and select at least one document to generate",
		})
		return
	}

	sources := service.SelectDocuments(h.library.Documents(), req.SourceDocumentIDs)
	if len(sources) == 0 {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "None of the selected documents exist",
		})
		return
	}

	doc := h.synthesis.Synthesize(req.Facts, sources, types.ParseFormat(req.Format), middleware.EmailFromContext(c))
	stored, origin, err := h.library.AddSynthesized(c, doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: gin.H{
			"document": stored,
			"origin":   origin,
		},
	})
}

func (h *SynthesisHandler) HandleList(c *gin.Context) {
	docs, origin, err := h.library.LoadSynthesized(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.SynthesizedListResponse{
			Documents: docs,
			Origin:    origin,
		},
	})
}

// HandleDelete removes a synthesized document; only its creator may do so.
func (h *SynthesisHandler) HandleDelete(c *gin.Context) {
	id := c.Param("id")
	email := middleware.EmailFromContext(c)

	var target *types.SynthesizedDocument
	for _, doc := range h.library.Synthesized() {
		if doc.ID == id {
			target = &doc
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Document not found",
		})
		return
	}
	if target.CreatedBy != email {
		c.JSON(http.StatusForbidden, types.DataResponse{
			Status:  false,
			Message: "Only the creator can delete this document",
		})
		return
	}

	origin, err := h.library.RemoveSynthesized(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   gin.H{"origin": origin},
	})
}
