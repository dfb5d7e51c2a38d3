package utils

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/doclibhq/doclib-be/types"
)

// ReadUploadFile reads a file for ingestion, wrapping any OS error in the
// per-file ReadFailure so batch callers can report it and keep going.
func ReadUploadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrReadFailure, path, err)
	}
	return data, nil
}

// MediaTypeFor resolves a declared content type, falling back to the file
// extension when the caller supplied none.
func MediaTypeFor(declared, filename string) string {
	if declared != "" {
		return declared
	}
	switch filepath.Ext(filename) {
	case ".txt":
		return "text/plain"
	case ".md":
		return "text/markdown"
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
