package events

// Project Event Types
const (
	ProjectCreated  = "PROJECT_CREATED"
	ProjectUpdated  = "PROJECT_UPDATED"
	ProjectDeleted  = "PROJECT_DELETED"
	ProjectImported = "PROJECT_IMPORTED"
)

// Graph Entity Event Types
const (
	NodeCreated = "NODE_CREATED"
	NodeUpdated = "NODE_UPDATED"
	NodeDeleted = "NODE_DELETED"

	NodeLinkCreated = "NODELINK_CREATED"
	NodeLinkDeleted = "NODELINK_DELETED"

	AttachmentCreated = "ATTACHMENT_CREATED"
	AttachmentUpdated = "ATTACHMENT_UPDATED"
	AttachmentDeleted = "ATTACHMENT_DELETED"
)

// Kafka Topics
const (
	ProjectActivityTopic = "project.activity"
	GraphChangesTopic    = "graph.changes"
)

// Entity Types
const (
	EntityTypeProject    = "project"
	EntityTypeNode       = "node"
	EntityTypeNodeLink   = "nodelink"
	EntityTypeAttachment = "attachment"
)
