package router

import (
	"graph_service/internal/handlers"

	"github.com/gin-gonic/gin"
)

// NodeLinkRoutes defines routes for individual node links. Creation and
// by-project listing live under the project routes; links are immutable
// so the only operations here are fetch and delete.
func NodeLinkRoutes(rg *gin.RouterGroup, linkHandler *handlers.NodeLinkHandler) {
	nodelinks := rg.Group("/nodelinks")
	{
		nodelinks.GET("/:linkId", linkHandler.GetNodeLink)
		nodelinks.DELETE("/:linkId", linkHandler.DeleteNodeLink)
	}
}
