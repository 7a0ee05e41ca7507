package handlers

import (
	"context"
	"log"
	"net/http"

	"graph_service/internal/events"
	"graph_service/internal/kafka"
	"graph_service/internal/models"
	"graph_service/internal/store"
	"graph_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NodeLinkHandler struct {
	db            *gorm.DB
	kafkaProducer *kafka.Producer
}

func NewNodeLinkHandler(db *gorm.DB, kafkaProducer *kafka.Producer) *NodeLinkHandler {
	return &NodeLinkHandler{
		db:            db,
		kafkaProducer: kafkaProducer,
	}
}

// CreateNodeLink connects two nodes within a project. Links are
// create-only; resubmitting an existing id is a conflict.
func (h *NodeLinkHandler) CreateNodeLink(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req struct {
		ID       *uuid.UUID      `json:"id"`
		Left     uuid.UUID       `json:"left" binding:"required"`
		Right    uuid.UUID       `json:"right" binding:"required"`
		LinkType models.LinkType `json:"link_type" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	link := models.NodeLink{
		Left:      req.Left,
		Right:     req.Right,
		ProjectID: projectID,
		LinkType:  req.LinkType,
	}
	if req.ID != nil {
		link.ID = *req.ID
	}

	saved, err := store.CreateNodeLink(h.db, &link)
	if err != nil {
		respondStoreError(c, err, "Failed to create node link")
		return
	}

	h.emitLinkEvent(c, events.NodeLinkCreated, saved)

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Node link created successfully", saved))
}

// ListProjectNodeLinks returns every link of a project
func (h *NodeLinkHandler) ListProjectNodeLinks(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	links, err := store.ListNodeLinksByProject(h.db, projectID)
	if err != nil {
		respondStoreError(c, err, "Failed to list node links")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Node links retrieved successfully", links))
}

// GetNodeLink retrieves a single node link
func (h *NodeLinkHandler) GetNodeLink(c *gin.Context) {
	linkID, ok := parseIDParam(c, "linkId")
	if !ok {
		return
	}

	link, err := store.GetNodeLink(h.db, linkID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve node link")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Node link retrieved successfully", link))
}

// DeleteNodeLink removes a node link
func (h *NodeLinkHandler) DeleteNodeLink(c *gin.Context) {
	linkID, ok := parseIDParam(c, "linkId")
	if !ok {
		return
	}

	link, err := store.GetNodeLink(h.db, linkID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve node link")
		return
	}

	if err := store.DeleteNodeLink(h.db, linkID); err != nil {
		respondStoreError(c, err, "Failed to delete node link")
		return
	}

	h.emitLinkEvent(c, events.NodeLinkDeleted, link)

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Node link deleted successfully", nil))
}

func (h *NodeLinkHandler) emitLinkEvent(c *gin.Context, eventType string, link *models.NodeLink) {
	if h.kafkaProducer == nil {
		return
	}
	event := events.NewGraphEvent(eventType, events.EntityTypeNodeLink, link.ID, link.ProjectID, actionBy(c))
	if err := h.kafkaProducer.PublishGraphEvent(context.Background(), event); err != nil {
		log.Printf("Failed to publish node link event: %v", err)
	}
}
