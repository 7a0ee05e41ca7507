package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a binary file bound to exactly one node. Data holds the
// zstd-compressed bytes at rest while Size always records the uncompressed
// length, so metadata listings never have to touch the blob.
type Attachment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	NodeID      uuid.UUID `gorm:"type:uuid;not null;index" json:"node_id"`
	Filename    string    `gorm:"size:255;not null" json:"filename"`
	ContentType string    `gorm:"size:255" json:"content_type"`
	Size        int64     `gorm:"not null" json:"size"`
	Data        []byte    `json:"data,omitempty"`
	Created     time.Time `json:"created"`

	Node Node `gorm:"foreignKey:NodeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// MetadataColumns are the attachment columns safe to select without
// materializing the blob.
var MetadataColumns = []string{"id", "node_id", "filename", "content_type", "size", "created"}
