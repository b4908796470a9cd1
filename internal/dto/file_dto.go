package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadFileResponse struct {
	Id       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
}

type FileResponse struct {
	Id        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

type FileDownloadResponse struct {
	Id       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
	URL      string    `json:"url"`
	// URL is presigned and expires; clients should not persist it
	ExpiresIn int64 `json:"expires_in"`
}
