package types

import "time"

// LibraryDocument is a user-uploaded file plus the metadata derived at
// ingestion time. Records are immutable after upload; deletion is by id.
type LibraryDocument struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	MediaType  string    `json:"media_type" bson:"media_type"`
	SizeBytes  int64     `json:"size_bytes" bson:"size_bytes"`
	Content    string    `json:"content" bson:"content"`
	Tags       []string  `json:"tags" bson:"tags"`
	Summary    string    `json:"summary" bson:"summary"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by" bson:"uploaded_by"`
}

// SourceRef points at a library document used as synthesis input. It is a
// reference only: deleting the source does not cascade to the synthesized
// record.
type SourceRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// SynthesizedDocument is a generated artifact combining user facts with
// selected library documents through a fixed template.
type SynthesizedDocument struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	Title           string      `json:"title" bson:"title"`
	Content         string      `json:"content" bson:"content"`
	Format          Format      `json:"format" bson:"format"`
	SourceFacts     string      `json:"source_facts" bson:"source_facts"`
	SourceDocuments []SourceRef `json:"source_documents" bson:"source_documents"`
	WordCount       int         `json:"word_count" bson:"word_count"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	CreatedBy       string      `json:"created_by" bson:"created_by"`
}

type User struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	CreatedAt    int64  `json:"created_at" bson:"created_at"`
}
