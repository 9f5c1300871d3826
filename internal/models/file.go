package models

import "time"

// StoredFile is an opaque blob kept in the files table. Content is base64
// encoded for transport and storage; any holder of the id may retrieve it.
type StoredFile struct {
	ID          string    `db:"id" json:"id"`
	Filename    string    `db:"filename" json:"filename"`
	ContentType string    `db:"content_type" json:"content_type"`
	Content     string    `db:"content" json:"content"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// FileUploadResponse acknowledges a stored upload.
type FileUploadResponse struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// FileDownloadResponse returns a stored blob with its metadata.
type FileDownloadResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}
