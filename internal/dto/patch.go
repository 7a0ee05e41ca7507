// Package dto carries the request payloads the HTTP layer binds before
// handing them to the store. Patch types use pointer fields so "absent"
// and "set to zero value" stay distinguishable, and Apply is a pure merge
// that can be tested without a database.
package dto

import (
	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectPatch updates the mutable fields of a project. Nil fields are
// left untouched.
type ProjectPatch struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Tags        *datatypes.JSON `json:"tags"`
}

// Apply merges the patch into an existing project. Timestamps are the
// store's responsibility, not the patch's.
func (p ProjectPatch) Apply(project *models.Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = p.Description
	}
	if p.Tags != nil {
		project.Tags = *p.Tags
	}
}

// NodePatch updates the mutable fields of a node. Nil fields are left
// untouched.
type NodePatch struct {
	Type    *models.NodeType `json:"type"`
	Display *string          `json:"display"`
	Value   *string          `json:"value"`
	Notes   *string          `json:"notes"`
	PosX    *int             `json:"pos_x"`
	PosY    *int             `json:"pos_y"`
}

// Apply merges the patch into an existing node. URL normalization and the
// updated timestamp are the store's responsibility.
func (p NodePatch) Apply(node *models.Node) {
	if p.Type != nil {
		node.Type = *p.Type
	}
	if p.Display != nil {
		node.Display = *p.Display
	}
	if p.Value != nil {
		node.Value = *p.Value
	}
	if p.Notes != nil {
		node.Notes = p.Notes
	}
	if p.PosX != nil {
		node.PosX = p.PosX
	}
	if p.PosY != nil {
		node.PosY = p.PosY
	}
}

// AttachmentPatch re-parents an attachment and/or replaces its blob.
// Data binds from base64 in JSON bodies; nil means keep the stored blob.
type AttachmentPatch struct {
	NodeID *uuid.UUID `json:"node_id"`
	Data   []byte     `json:"data"`
}
