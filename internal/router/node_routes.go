package router

import (
	"graph_service/internal/handlers"

	"github.com/gin-gonic/gin"
)

// NodeRoutes defines routes for node management
func NodeRoutes(rg *gin.RouterGroup, nodeHandler *handlers.NodeHandler, attachmentHandler *handlers.AttachmentHandler) {
	nodes := rg.Group("/nodes")
	{
		nodes.GET("/:nodeId", nodeHandler.GetNode)
		nodes.PUT("/:nodeId", nodeHandler.UpdateNode)
		nodes.DELETE("/:nodeId", nodeHandler.DeleteNode)

		// Attachment upload and metadata within a node
		nodes.POST("/:nodeId/attachments", attachmentHandler.UploadAttachment)
		nodes.GET("/:nodeId/attachments", attachmentHandler.ListNodeAttachments)
	}
}
