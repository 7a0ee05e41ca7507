package router

import (
	"graph_service/internal/handlers"

	"github.com/gin-gonic/gin"
)

// AttachmentRoutes defines routes for attachment management
func AttachmentRoutes(rg *gin.RouterGroup, attachmentHandler *handlers.AttachmentHandler) {
	attachments := rg.Group("/attachments")
	{
		attachments.GET("/:attachmentId", attachmentHandler.GetAttachment)
		attachments.PUT("/:attachmentId", attachmentHandler.UpdateAttachment)
		attachments.DELETE("/:attachmentId", attachmentHandler.DeleteAttachment)

		// Blob retrieval
		attachments.GET("/:attachmentId/download", attachmentHandler.DownloadAttachment)
		attachments.GET("/:attachmentId/view", attachmentHandler.ViewAttachment)
	}
}
