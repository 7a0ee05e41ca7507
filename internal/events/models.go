package events

import (
	"time"

	"github.com/google/uuid"
)

// ProjectEvent represents events related to project lifecycle operations
type ProjectEvent struct {
	EventType string    `json:"eventType"`
	ProjectID string    `json:"projectId"`
	ActionBy  string    `json:"actionBy"`
	Timestamp time.Time `json:"timestamp"`
}

// GraphEvent represents events related to graph entity operations
type GraphEvent struct {
	EventType  string    `json:"eventType"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	ProjectID  string    `json:"projectId"`
	ActionBy   string    `json:"actionBy"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewProjectEvent creates a new project event
func NewProjectEvent(eventType string, projectID, actionBy uuid.UUID) *ProjectEvent {
	return &ProjectEvent{
		EventType: eventType,
		ProjectID: projectID.String(),
		ActionBy:  actionBy.String(),
		Timestamp: time.Now(),
	}
}

// NewGraphEvent creates a new graph entity event
func NewGraphEvent(eventType, entityType string, entityID, projectID, actionBy uuid.UUID) *GraphEvent {
	return &GraphEvent{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID.String(),
		ProjectID:  projectID.String(),
		ActionBy:   actionBy.String(),
		Timestamp:  time.Now(),
	}
}
