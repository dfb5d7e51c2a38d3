package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type SignInResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

// Origin tags a store operation with where its data ended up, so callers can
// tell a degraded-but-successful operation from a hard failure.
type Origin string

const (
	OriginRemote Origin = "remote"
	OriginLocal  Origin = "local"
)

// FileUploadResult reports the outcome of one file in an upload batch. A
// failed file never aborts the rest of the batch.
type FileUploadResult struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Error   string   `json:"error,omitempty"`
	ID      string   `json:"id,omitempty"`
	Origin  Origin   `json:"origin,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

type DocumentListResponse struct {
	Documents []LibraryDocument `json:"documents"`
	Origin    Origin            `json:"origin"`
}

type SynthesizedListResponse struct {
	Documents []SynthesizedDocument `json:"documents"`
	Origin    Origin                `json:"origin"`
}

type ImportResponse struct {
	ImportedDocuments   int `json:"imported_documents"`
	ImportedSynthesized int `json:"imported_synthesized"`
}
