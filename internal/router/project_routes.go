package router

import (
	"graph_service/internal/handlers"

	"github.com/gin-gonic/gin"
)

// ProjectRoutes defines routes for project management
func ProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, nodeHandler *handlers.NodeHandler, linkHandler *handlers.NodeLinkHandler, attachmentHandler *handlers.AttachmentHandler, importHandler *handlers.ImportHandler) {
	projects := rg.Group("/projects")
	{
		projects.POST("", projectHandler.UpsertProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:projectId", projectHandler.GetProject)
		projects.PUT("/:projectId", projectHandler.UpdateProject)
		projects.DELETE("/:projectId", projectHandler.DeleteProject)

		// Export and import
		projects.GET("/:projectId/export", projectHandler.ExportProject)
		projects.POST("/import", projectHandler.ImportProject)

		// Nodes and links within a project
		projects.POST("/:projectId/nodes", nodeHandler.CreateNode)
		projects.GET("/:projectId/nodes", nodeHandler.ListProjectNodes)
		projects.POST("/:projectId/nodelinks", linkHandler.CreateNodeLink)
		projects.GET("/:projectId/nodelinks", linkHandler.ListProjectNodeLinks)

		// Project-wide attachment metadata
		projects.GET("/:projectId/attachments", attachmentHandler.ListProjectAttachments)

		// Bulk node import from CSV
		projects.POST("/:projectId/import-nodes", importHandler.ImportNodes)
	}
}
