package handlers

import (
	"context"
	"log"
	"net/http"

	"graph_service/internal/dto"
	"graph_service/internal/events"
	"graph_service/internal/kafka"
	"graph_service/internal/models"
	"graph_service/internal/redis"
	"graph_service/internal/store"
	"graph_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NodeHandler struct {
	db            *gorm.DB
	kafkaProducer *kafka.Producer
	redisService  *redis.Service
}

func NewNodeHandler(db *gorm.DB, kafkaProducer *kafka.Producer, redisService *redis.Service) *NodeHandler {
	return &NodeHandler{
		db:            db,
		kafkaProducer: kafkaProducer,
		redisService:  redisService,
	}
}

// CreateNode adds a node to a project
func (h *NodeHandler) CreateNode(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req struct {
		ID      *uuid.UUID      `json:"id"`
		Type    models.NodeType `json:"type" binding:"required"`
		Display string          `json:"display" binding:"required"`
		Value   string          `json:"value"`
		Notes   *string         `json:"notes"`
		PosX    *int            `json:"pos_x"`
		PosY    *int            `json:"pos_y"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	node := models.Node{
		Type:      req.Type,
		ProjectID: projectID,
		Display:   req.Display,
		Value:     req.Value,
		Notes:     req.Notes,
		PosX:      req.PosX,
		PosY:      req.PosY,
	}
	if req.ID != nil {
		node.ID = *req.ID
	}

	saved, err := store.CreateNode(h.db, &node)
	if err != nil {
		respondStoreError(c, err, "Failed to create node")
		return
	}

	h.emitNodeEvent(c, events.NodeCreated, saved)

	if h.redisService != nil {
		if err := h.redisService.SetNodeMetadata(context.Background(), saved); err != nil {
			log.Printf("Failed to cache node metadata: %v", err)
		}
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Node created successfully", saved))
}

// GetNode retrieves a single node, consulting the cache first
func (h *NodeHandler) GetNode(c *gin.Context) {
	nodeID, ok := parseIDParam(c, "nodeId")
	if !ok {
		return
	}

	if h.redisService != nil {
		cached, err := h.redisService.GetNodeMetadata(context.Background(), nodeID)
		if err != nil {
			log.Printf("Cache error when getting node metadata: %v", err)
		}
		if cached != nil {
			log.Printf("Retrieved node %s from cache", nodeID)
			c.JSON(http.StatusOK, responses.NewSuccessResponse("Node retrieved successfully", cached))
			return
		}
	}

	node, err := store.GetNode(h.db, nodeID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve node")
		return
	}

	if h.redisService != nil {
		if err := h.redisService.SetNodeMetadata(context.Background(), node); err != nil {
			log.Printf("Failed to cache node metadata: %v", err)
		}
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Node retrieved successfully", node))
}

// ListProjectNodes returns every node of a project
func (h *NodeHandler) ListProjectNodes(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	nodes, err := store.ListNodesByProject(h.db, projectID)
	if err != nil {
		respondStoreError(c, err, "Failed to list nodes")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Nodes retrieved successfully", nodes))
}

// UpdateNode applies a partial update to an existing node
func (h *NodeHandler) UpdateNode(c *gin.Context) {
	nodeID, ok := parseIDParam(c, "nodeId")
	if !ok {
		return
	}

	var patch dto.NodePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Printf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	node, err := store.UpdateNode(h.db, nodeID, patch)
	if err != nil {
		respondStoreError(c, err, "Failed to update node")
		return
	}

	h.emitNodeEvent(c, events.NodeUpdated, node)

	if h.redisService != nil {
		if err := h.redisService.SetNodeMetadata(context.Background(), node); err != nil {
			log.Printf("Failed to cache node metadata: %v", err)
		}
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Node updated successfully", node))
}

// DeleteNode removes a node along with its attachments and links
func (h *NodeHandler) DeleteNode(c *gin.Context) {
	nodeID, ok := parseIDParam(c, "nodeId")
	if !ok {
		return
	}

	// Resolve the project before the row disappears, for the event.
	node, err := store.GetNode(h.db, nodeID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve node")
		return
	}

	if err := store.DeleteNode(h.db, nodeID); err != nil {
		respondStoreError(c, err, "Failed to delete node")
		return
	}

	h.emitNodeEvent(c, events.NodeDeleted, node)

	if h.redisService != nil {
		if err := h.redisService.InvalidateNodeMetadata(context.Background(), nodeID); err != nil {
			log.Printf("Failed to invalidate node cache: %v", err)
		}
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Node deleted successfully", nil))
}

func (h *NodeHandler) emitNodeEvent(c *gin.Context, eventType string, node *models.Node) {
	if h.kafkaProducer == nil {
		return
	}
	event := events.NewGraphEvent(eventType, events.EntityTypeNode, node.ID, node.ProjectID, actionBy(c))
	if err := h.kafkaProducer.PublishGraphEvent(context.Background(), event); err != nil {
		log.Printf("Failed to publish node event: %v", err)
	}
}
