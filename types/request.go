package types

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SynthesizeRequest struct {
	Facts             string   `json:"facts"`
	SourceDocumentIDs []string `json:"source_document_ids"`
	Format            string   `json:"format"`
}
