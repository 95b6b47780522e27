package model

type Document struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"project_id,omitempty"`
	Title      string `json:"title"`
	DocType    string `json:"doc_type,omitempty"`
	StorageURL string `json:"storage_url,omitempty"`
	UploadedAt string `json:"uploaded_at,omitempty"`
}
