package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID            uuid.UUID `json:"id" db:"id"`
	OwnerID       uuid.UUID `json:"ownerId" db:"owner_id"`
	Title         string    `json:"title" db:"title"`
	FilePath      string    `json:"filePath,omitempty" db:"file_path"`
	FileType      string    `json:"fileType,omitempty" db:"file_type"`
	FileSizeBytes int64     `json:"fileSizeBytes,omitempty" db:"file_size_bytes"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

const (
	DocStatusPending    = "pending"
	DocStatusProcessing = "processing"
	DocStatusReady      = "ready"
	DocStatusFailed     = "failed"
)
