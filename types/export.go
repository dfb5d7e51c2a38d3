package types

import "time"

const ExportVersion = "1.0"

// LibraryExport is the on-disk interchange format for a whole library.
type LibraryExport struct {
	Version              string                `json:"version"`
	ExportDate           time.Time             `json:"exportDate"`
	Documents            []LibraryDocument     `json:"documents"`
	SynthesizedDocuments []SynthesizedDocument `json:"synthesizedDocuments"`
	Metadata             ExportMetadata        `json:"metadata"`
}

type ExportMetadata struct {
	TotalDocuments   int `json:"totalDocuments"`
	TotalSynthesized int `json:"totalSynthesized"`
}
