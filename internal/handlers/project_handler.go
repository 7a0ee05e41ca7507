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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	db            *gorm.DB
	kafkaProducer *kafka.Producer
	redisService  *redis.Service
}

func NewProjectHandler(db *gorm.DB, kafkaProducer *kafka.Producer, redisService *redis.Service) *ProjectHandler {
	return &ProjectHandler{
		db:            db,
		kafkaProducer: kafkaProducer,
		redisService:  redisService,
	}
}

// UpsertProject creates a project, or merges the submitted fields into an
// existing project when the id is already known
func (h *ProjectHandler) UpsertProject(c *gin.Context) {
	var req struct {
		ID          *uuid.UUID      `json:"id"`
		Name        string          `json:"name" binding:"required"`
		Description *string         `json:"description"`
		Tags        *datatypes.JSON `json:"tags"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	project := models.Project{
		Name:        req.Name,
		User:        actionBy(c),
		Description: req.Description,
		Tags:        datatypes.JSON("[]"),
	}
	if req.Tags != nil {
		project.Tags = *req.Tags
	}
	if req.ID != nil {
		project.ID = *req.ID
	} else {
		// Without this a body that omits the id would merge into the
		// nil-UUID Inbox project.
		project.ID = uuid.New()
	}

	created := false
	if _, err := store.GetProject(h.db, project.ID); store.IsNotFound(err) {
		created = true
	}

	saved, err := store.UpsertProject(h.db, &project)
	if err != nil {
		respondStoreError(c, err, "Failed to save project")
		return
	}

	eventType := events.ProjectUpdated
	status := http.StatusOK
	if created {
		eventType = events.ProjectCreated
		status = http.StatusCreated
	}

	if h.kafkaProducer != nil {
		event := events.NewProjectEvent(eventType, saved.ID, actionBy(c))
		if err := h.kafkaProducer.PublishProjectEvent(context.Background(), event); err != nil {
			log.Printf("Failed to publish project event: %v", err)
		}
	}

	if h.redisService != nil {
		if err := h.redisService.SetProjectMetadata(context.Background(), saved); err != nil {
			log.Printf("Failed to cache project metadata: %v", err)
		}
	}

	c.JSON(status, responses.NewSuccessResponse("Project saved successfully", saved))
}

// GetProject retrieves a single project, consulting the cache first
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	if h.redisService != nil {
		cached, err := h.redisService.GetProjectMetadata(context.Background(), projectID)
		if err != nil {
			log.Printf("Cache error when getting project metadata: %v", err)
		}
		if cached != nil {
			log.Printf("Retrieved project %s from cache", projectID)
			c.JSON(http.StatusOK, responses.NewSuccessResponse("Project retrieved successfully", cached))
			return
		}
	}

	project, err := store.GetProject(h.db, projectID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve project")
		return
	}

	if h.redisService != nil {
		if err := h.redisService.SetProjectMetadata(context.Background(), project); err != nil {
			log.Printf("Failed to cache project metadata: %v", err)
		}
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Project retrieved successfully", project))
}

// ListProjects returns every project
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := store.ListProjects(h.db)
	if err != nil {
		respondStoreError(c, err, "Failed to list projects")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Projects retrieved successfully", projects))
}

// UpdateProject applies a partial update to an existing project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var patch dto.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Printf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	project, err := store.UpdateProject(h.db, projectID, patch)
	if err != nil {
		respondStoreError(c, err, "Failed to update project")
		return
	}

	if h.kafkaProducer != nil {
		event := events.NewProjectEvent(events.ProjectUpdated, project.ID, actionBy(c))
		if err := h.kafkaProducer.PublishProjectEvent(context.Background(), event); err != nil {
			log.Printf("Failed to publish project event: %v", err)
		}
	}

	if h.redisService != nil {
		if err := h.redisService.SetProjectMetadata(context.Background(), project); err != nil {
			log.Printf("Failed to cache project metadata: %v", err)
		}
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Project updated successfully", project))
}

// DeleteProject removes a project and everything it owns. The Inbox
// project is refused.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	if err := store.DeleteProject(h.db, projectID); err != nil {
		respondStoreError(c, err, "Failed to delete project")
		return
	}

	if h.kafkaProducer != nil {
		event := events.NewProjectEvent(events.ProjectDeleted, projectID, actionBy(c))
		if err := h.kafkaProducer.PublishProjectEvent(context.Background(), event); err != nil {
			log.Printf("Failed to publish project event: %v", err)
		}
	}

	if h.redisService != nil {
		if err := h.redisService.InvalidateProjectMetadata(context.Background(), projectID); err != nil {
			log.Printf("Failed to invalidate project cache: %v", err)
		}
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Project deleted successfully", nil))
}

// ExportProject snapshots the project as a transferable document.
// ?attachments=true pulls the decompressed blobs into the document.
func (h *ProjectHandler) ExportProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	includeAttachments := c.Query("attachments") == "true"

	doc, err := store.ExportProject(h.db, projectID, includeAttachments)
	if err != nil {
		respondStoreError(c, err, "Failed to export project")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ImportProject replays an export document into the database
func (h *ProjectHandler) ImportProject(c *gin.Context) {
	var doc store.ExportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		log.Printf("Invalid export document: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid export document", err.Error()))
		return
	}

	result, err := store.ImportProject(h.db, &doc)
	if err != nil {
		respondStoreError(c, err, "Failed to import project")
		return
	}

	if h.kafkaProducer != nil {
		event := events.NewProjectEvent(events.ProjectImported, doc.Project.ID, actionBy(c))
		if err := h.kafkaProducer.PublishProjectEvent(context.Background(), event); err != nil {
			log.Printf("Failed to publish project event: %v", err)
		}
	}

	if h.redisService != nil {
		if err := h.redisService.InvalidateProjectMetadata(context.Background(), doc.Project.ID); err != nil {
			log.Printf("Failed to invalidate project cache: %v", err)
		}
	}

	log.Printf("Imported project %s: %d nodes, %d links, %d attachments, %d errors",
		doc.Project.ID, result.Nodes, result.NodeLinks, result.Attachments, len(result.Errors))

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Project imported successfully", result))
}
