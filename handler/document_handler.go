package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/doclibhq/doclib-be/middleware"
	"github.com/doclibhq/doclib-be/service"
	"github.com/doclibhq/doclib-be/types"
	"github.com/doclibhq/doclib-be/utils"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	library        service.LibraryService
	maxUploadBytes int64
}

func NewDocumentHandler(library service.LibraryService, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		library:        library,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleList reloads the library and returns it newest-first, tagged with
// the origin the data came from.
func (h *DocumentHandler) HandleList(c *gin.Context) {
	docs, origin, err := h.library.LoadDocuments(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.DocumentListResponse{
			Documents: docs,
			Origin:    origin,
		},
	})
}

// HandleSearch filters the in-memory collection by substring match over
// name, content and tags.
func (h *DocumentHandler) HandleSearch(c *gin.Context) {
	query := c.Query("q")
	docs := service.FilterDocuments(h.library.Documents(), query)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.DocumentListResponse{
			Documents: docs,
			Origin:    types.OriginLocal,
		},
	})
}

// HandleUpload ingests a multipart batch. Each file succeeds or fails on its
// own; one unsupported or unreadable file never aborts the rest.
func (h *DocumentHandler) HandleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid multipart form",
		})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "No files provided",
		})
		return
	}

	uploadedBy := middleware.EmailFromContext(c)
	results := make([]types.FileUploadResult, 0, len(files))
	for _, header := range files {
		result := types.FileUploadResult{Name: header.Filename}

		if header.Size > h.maxUploadBytes {
			result.Status = "error"
			result.Error = "file too large"
			results = append(results, result)
			continue
		}

		src, err := header.Open()
		if err != nil {
			result.Status = "error"
			result.Error = types.ErrReadFailure.Error()
			results = append(results, result)
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			result.Status = "error"
			result.Error = types.ErrReadFailure.Error()
			results = append(results, result)
			continue
		}

		mediaType := utils.MediaTypeFor(header.Header.Get("Content-Type"), header.Filename)
		extraction, err := service.ExtractDocument(mediaType, header.Filename, data, time.Now())
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		doc, origin, err := h.library.AddDocument(c, types.LibraryDocument{
			Name:      header.Filename,
			MediaType: mediaType,
			SizeBytes: header.Size,
			Content:   extraction.Content,
			Tags:      extraction.Tags,
			Summary:   extraction.Summary,
		}, uploadedBy)
		if err != nil {
			result.Status = "error"
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Status = "success"
		result.ID = doc.ID
		result.Origin = origin
		result.Tags = doc.Tags
		result.Summary = doc.Summary
		results = append(results, result)
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   results,
	})
}

// HandleDelete removes a document. Only the uploader may delete their own
// documents; the permission check happens here, before the store operation,
// which is itself unconditional.
func (h *DocumentHandler) HandleDelete(c *gin.Context) {
	id := c.Param("id")
	email := middleware.EmailFromContext(c)

	var target *types.LibraryDocument
	for _, doc := range h.library.Documents() {
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
	if target.UploadedBy != email {
		c.JSON(http.StatusForbidden, types.DataResponse{
			Status:  false,
			Message: "Only the uploader can delete this document",
		})
		return
	}

	origin, err := h.library.RemoveDocument(c, id)
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
