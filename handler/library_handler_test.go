package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclibhq/doclib-be/types"
)

func newLibraryRouter(library *fakeLibrary, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLibraryHandler(library)
	r := gin.New()
	r.Use(sessionAs(email))
	r.GET("/library/export", h.HandleExport)
	r.POST("/library/import", h.HandleImport)
	return r
}

func TestHandleExport_Envelope(t *testing.T) {
	library := &fakeLibrary{
		docs:  []types.LibraryDocument{{ID: "d1", Name: "a.txt"}},
		synth: []types.SynthesizedDocument{{ID: "s1", Title: "T"}},
	}
	r := newLibraryRouter(library, "alice@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/library/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=document-library-")

	var export types.LibraryExport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	assert.Equal(t, types.ExportVersion, export.Version)
	assert.Equal(t, 1, export.Metadata.TotalDocuments)
	assert.Equal(t, 1, export.Metadata.TotalSynthesized)
	require.Len(t, export.Documents, 1)
	assert.Equal(t, "a.txt", export.Documents[0].Name)
}

func TestHandleImport_AppliesRecords(t *testing.T) {
	library := &fakeLibrary{}
	r := newLibraryRouter(library, "alice@example.com")

	body := `{"version":"1.0","documents":[{"id":"old-1","name":"a.txt"}],"synthesizedDocuments":[{"id":"old-2","title":"T","format":"summary"}]}`
	w := postJSON(r, "/library/import", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status bool                 `json:"status"`
		Data   types.ImportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.ImportedDocuments)
	assert.Equal(t, 1, resp.Data.ImportedSynthesized)

	require.Len(t, library.docs, 1)
	assert.NotEqual(t, "old-1", library.docs[0].ID)
	assert.Equal(t, "alice@example.com", library.docs[0].UploadedBy)
	require.Len(t, library.synth, 1)
	assert.Equal(t, types.FormatSummary, library.synth[0].Format)
}

func TestHandleImport_InvalidFileRejectedWholesale(t *testing.T) {
	library := &fakeLibrary{}
	r := newLibraryRouter(library, "alice@example.com")

	w := postJSON(r, "/library/import", `{"documents":[{"name":"a.txt"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, library.docs)
	assert.Empty(t, library.synth)
}
