package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doclibhq/doclib-be/middleware"
	"github.com/doclibhq/doclib-be/service"
	"github.com/doclibhq/doclib-be/types"
	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	library service.LibraryService
}

func NewLibraryHandler(library service.LibraryService) *LibraryHandler {
	return &LibraryHandler{
		library: library,
	}
}

// HandleExport serializes the whole library as a downloadable JSON file.
func (h *LibraryHandler) HandleExport(c *gin.Context) {
	docs, _, err := h.library.LoadDocuments(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	synth, _, err := h.library.LoadSynthesized(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	now := time.Now().UTC()
	filename := fmt.Sprintf("document-library-%s.json", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.JSON(http.StatusOK, service.ExportLibrary(docs, synth, now))
}

// HandleImport ingests an exported library file. A malformed file aborts the
// whole import before any record is applied; imported records get fresh ids
// and are attributed to the importing session.
func (h *LibraryHandler) HandleImport(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: types.ErrReadFailure.Error(),
		})
		return
	}

	result, err := service.ParseLibraryImport(data)
	if err != nil {
		if errors.Is(err, types.ErrInvalidImportFormat) {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  false,
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	email := middleware.EmailFromContext(c)
	for _, doc := range result.Documents {
		if _, _, err := h.library.AddDocument(c, doc, email); err != nil {
			c.JSON(http.StatusInternalServerError, types.DataResponse{
				Status:  false,
				Message: err.Error(),
			})
			return
		}
	}
	for _, doc := range result.Synthesized {
		if _, _, err := h.library.AddSynthesized(c, doc); err != nil {
			c.JSON(http.StatusInternalServerError, types.DataResponse{
				Status:  false,
				Message: err.Error(),
			})
			return
		}
	}

	imported, synthesized := result.Counts()
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.ImportResponse{
			ImportedDocuments:   imported,
			ImportedSynthesized: synthesized,
		},
	})
}
