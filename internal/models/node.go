package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NodeType is the closed set of entity kinds a node can represent.
// The string values are a storage and export contract - renaming a
// constant must not change its encoded form.
type NodeType string

const (
	NodeTypePerson       NodeType = "person"
	NodeTypeDomain       NodeType = "domain"
	NodeTypeIP           NodeType = "ip"
	NodeTypePhone        NodeType = "phone"
	NodeTypeEmail        NodeType = "email"
	NodeTypeURL          NodeType = "url"
	NodeTypeImage        NodeType = "image"
	NodeTypeLocation     NodeType = "location"
	NodeTypeOrganisation NodeType = "organisation"
	NodeTypeDocument     NodeType = "document"
	NodeTypeCurrency     NodeType = "currency"
)

// Valid reports whether t is a known node type.
func (t NodeType) Valid() bool {
	switch t {
	case NodeTypePerson, NodeTypeDomain, NodeTypeIP, NodeTypePhone,
		NodeTypeEmail, NodeTypeURL, NodeTypeImage, NodeTypeLocation,
		NodeTypeOrganisation, NodeTypeDocument, NodeTypeCurrency:
		return true
	}
	return false
}

// Node is a single graph entity inside a project.
type Node struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Type      NodeType  `gorm:"column:type;size:15;not null" json:"type"`
	Display   string    `gorm:"size:255" json:"display"`
	Value     string    `gorm:"type:text" json:"value"`
	Updated   time.Time `json:"updated"`
	Notes     *string   `json:"notes,omitempty"`
	PosX      *int      `gorm:"column:pos_x" json:"pos_x,omitempty"`
	PosY      *int      `gorm:"column:pos_y" json:"pos_y,omitempty"`

	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// NormalizeURLValue trims whitespace and strips invisible Unicode code
// points (zero-width spaces, zero-width no-break space, pop directional
// isolate) that break URL parsing when pasted from other tools. It is
// idempotent.
func NormalizeURLValue(value string) string {
	stripped := strings.Map(func(r rune) rune {
		switch {
		case r >= '\u200B' && r <= '\u200D':
			return -1
		case r == '\uFEFF', r == '\u2069':
			return -1
		}
		return r
	}, strings.TrimSpace(value))
	// Stripping can expose new edge whitespace; trim again so the
	// function stays idempotent.
	return strings.TrimSpace(stripped)
}
