package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InboxProjectName is the display name of the protected default project.
const InboxProjectName = "Inbox"

// Project is an investigation workspace owning nodes and links.
// The Inbox project has the all-zero UUID and must never be deleted.
type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	User         uuid.UUID      `gorm:"type:uuid;not null" json:"user"`
	CreationDate time.Time      `gorm:"column:creationdate" json:"creationdate"`
	LastUpdated  *time.Time     `json:"last_updated,omitempty"`
	Description  *string        `json:"description"`
	Tags         datatypes.JSON `json:"tags"`
}

// IsInbox reports whether this is the protected default project.
func (p *Project) IsInbox() bool {
	return p.ID == uuid.Nil
}
