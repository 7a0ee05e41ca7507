package handlers

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"graph_service/internal/codec"
	"graph_service/internal/dto"
	"graph_service/internal/events"
	"graph_service/internal/kafka"
	"graph_service/internal/models"
	"graph_service/internal/store"
	"graph_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttachmentHandler struct {
	db            *gorm.DB
	kafkaProducer *kafka.Producer
}

func NewAttachmentHandler(db *gorm.DB, kafkaProducer *kafka.Producer) *AttachmentHandler {
	return &AttachmentHandler{
		db:            db,
		kafkaProducer: kafkaProducer,
	}
}

// UploadAttachment stores a multipart file upload against a node. The
// blob is compressed at rest; the recorded size is the original size.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	nodeID, ok := parseIDParam(c, "nodeId")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		log.Printf("Error getting file from request: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse(
			"No file was uploaded or invalid file field. Please use 'file' as the form field name.",
			err.Error()))
		return
	}
	defer file.Close()

	log.Printf("Received file: %s, size: %d bytes, content type: %s",
		header.Filename, header.Size, header.Header.Get("Content-Type"))

	raw, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Failed to read uploaded file", ""))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := store.CreateAttachment(h.db, nodeID, header.Filename, contentType, raw)
	if err != nil {
		respondStoreError(c, err, "Failed to store attachment")
		return
	}

	h.emitAttachmentEvent(c, events.AttachmentCreated, attachment)

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Attachment uploaded successfully", attachment))
}

// ListNodeAttachments returns blob-free attachment metadata for a node
func (h *AttachmentHandler) ListNodeAttachments(c *gin.Context) {
	nodeID, ok := parseIDParam(c, "nodeId")
	if !ok {
		return
	}

	attachments, err := store.ListAttachmentMetadata(h.db, nodeID)
	if err != nil {
		respondStoreError(c, err, "Failed to list attachments")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Attachments retrieved successfully", attachments))
}

// ListProjectAttachments returns blob-free attachment metadata for every
// node of a project
func (h *AttachmentHandler) ListProjectAttachments(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	attachments, err := store.ListProjectAttachmentMetadata(h.db, projectID)
	if err != nil {
		respondStoreError(c, err, "Failed to list attachments")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Attachments retrieved successfully", attachments))
}

// GetAttachment returns the metadata of one attachment
func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	attachment, err := store.GetAttachment(h.db, attachmentID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve attachment")
		return
	}

	attachment.Data = nil
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Attachment retrieved successfully", attachment))
}

// DownloadAttachment streams the decompressed blob back as a file
// download.
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	attachment, err := store.GetAttachment(h.db, attachmentID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve attachment")
		return
	}

	raw, err := codec.Decompress(attachment.Data)
	if err != nil {
		log.Printf("Failed to decompress attachment %s: %v", attachmentID, err)
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to decompress attachment", ""))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+attachment.Filename+`"`)
	c.Data(http.StatusOK, attachment.ContentType, raw)
}

// ViewAttachment serves the blob inline. Clients advertising zstd
// support get the stored bytes passed through untouched with
// Content-Encoding set; everyone else gets a server-side decompress.
func (h *AttachmentHandler) ViewAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	attachment, err := store.GetAttachment(h.db, attachmentID)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve attachment")
		return
	}

	if strings.Contains(c.GetHeader("Accept-Encoding"), "zstd") {
		c.Header("Content-Encoding", "zstd")
		c.Data(http.StatusOK, attachment.ContentType, attachment.Data)
		return
	}

	raw, err := codec.Decompress(attachment.Data)
	if err != nil {
		log.Printf("Failed to decompress attachment %s: %v", attachmentID, err)
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to decompress attachment", ""))
		return
	}

	c.Data(http.StatusOK, attachment.ContentType, raw)
}

// UpdateAttachment re-parents the attachment and/or replaces its blob
func (h *AttachmentHandler) UpdateAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	var patch dto.AttachmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.Printf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	attachment, err := store.UpdateAttachment(h.db, attachmentID, patch)
	if err != nil {
		respondStoreError(c, err, "Failed to update attachment")
		return
	}

	h.emitAttachmentEvent(c, events.AttachmentUpdated, attachment)

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Attachment updated successfully", attachment))
}

// DeleteAttachment removes an attachment. Deleting an id that is already
// gone still succeeds.
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	// Look up the row first so the event can name its node; when it is
	// already gone the delete still succeeds and no event fires.
	attachment, err := store.GetAttachment(h.db, attachmentID)
	if err != nil && !store.IsNotFound(err) {
		respondStoreError(c, err, "Failed to retrieve attachment")
		return
	}

	if err := store.DeleteAttachment(h.db, attachmentID); err != nil {
		respondStoreError(c, err, "Failed to delete attachment")
		return
	}

	if attachment != nil {
		h.emitAttachmentEvent(c, events.AttachmentDeleted, attachment)
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Attachment deleted successfully", nil))
}

func (h *AttachmentHandler) emitAttachmentEvent(c *gin.Context, eventType string, attachment *models.Attachment) {
	if h.kafkaProducer == nil {
		return
	}

	// Attachments hang off nodes, so the owning project has to be
	// resolved through the node.
	node, err := store.GetNode(h.db, attachment.NodeID)
	if err != nil {
		log.Printf("Failed to resolve node for attachment event: %v", err)
		return
	}

	event := events.NewGraphEvent(eventType, events.EntityTypeAttachment, attachment.ID, node.ProjectID, actionBy(c))
	if err := h.kafkaProducer.PublishGraphEvent(context.Background(), event); err != nil {
		log.Printf("Failed to publish attachment event: %v", err)
	}
}
