package models

import "github.com/google/uuid"

// LinkType describes the direction of an edge. The string values are a
// storage and export contract.
type LinkType string

const (
	// LinkTypeOmni is an undirected edge.
	LinkTypeOmni LinkType = "omni"
	// LinkTypeDirectional is a directed edge from Left to Right.
	LinkTypeDirectional LinkType = "directional"
)

// Valid reports whether t is a known link type.
func (t LinkType) Valid() bool {
	return t == LinkTypeOmni || t == LinkTypeDirectional
}

// NodeLink is an edge between two nodes of one project. Unlike projects
// and nodes it is create-only: posting an existing id is a conflict, and
// the only mutation path is delete and recreate.
type NodeLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Left      uuid.UUID `gorm:"type:uuid;not null;index" json:"left"`
	Right     uuid.UUID `gorm:"type:uuid;not null;index" json:"right"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	LinkType  LinkType  `gorm:"size:15;not null" json:"linktype"`

	Project   Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	LeftNode  Node    `gorm:"foreignKey:Left;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	RightNode Node    `gorm:"foreignKey:Right;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
