package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/doclibhq/doclib-be/types"
	"github.com/google/uuid"
)

// ExportLibrary wraps both collections in the versioned interchange envelope.
func ExportLibrary(documents []types.LibraryDocument, synthesized []types.SynthesizedDocument, now time.Time) types.LibraryExport {
	return types.LibraryExport{
		Version:              types.ExportVersion,
		ExportDate:           now,
		Documents:            documents,
		SynthesizedDocuments: synthesized,
		Metadata: types.ExportMetadata{
			TotalDocuments:   len(documents),
			TotalSynthesized: len(synthesized),
		},
	}
}

// ImportResult carries the fully parsed records of a library file. Records
// get freshly generated ids so an import can never collide with entries
// already in the library.
type ImportResult struct {
	Documents   []types.LibraryDocument
	Synthesized []types.SynthesizedDocument
}

func (r ImportResult) Counts() (int, int) {
	return len(r.Documents), len(r.Synthesized)
}

// ParseLibraryImport validates and parses an exported library file. The
// version and documents fields are mandatory; any violation rejects the whole
// file with ErrInvalidImportFormat before a single record is applied.
func ParseLibraryImport(data []byte) (ImportResult, error) {
	var raw struct {
		Version              *string                     `json:"version"`
		Documents            *[]types.LibraryDocument    `json:"documents"`
		SynthesizedDocuments []types.SynthesizedDocument `json:"synthesizedDocuments"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", types.ErrInvalidImportFormat, err)
	}
	if raw.Version == nil || raw.Documents == nil {
		return ImportResult{}, types.ErrInvalidImportFormat
	}

	result := ImportResult{
		Documents:   make([]types.LibraryDocument, 0, len(*raw.Documents)),
		Synthesized: make([]types.SynthesizedDocument, 0, len(raw.SynthesizedDocuments)),
	}
	for _, doc := range *raw.Documents {
		doc.ID = uuid.NewString()
		result.Documents = append(result.Documents, doc)
	}
	for _, doc := range raw.SynthesizedDocuments {
		doc.ID = uuid.NewString()
		doc.Format = types.ParseFormat(string(doc.Format))
		result.Synthesized = append(result.Synthesized, doc)
	}
	return result, nil
}
