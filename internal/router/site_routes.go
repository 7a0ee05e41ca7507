package router

import (
	"os"

	"graph_service/internal/handlers"
	"graph_service/internal/middleware"
	"graph_service/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler the router wires up
type Handlers struct {
	Project    *handlers.ProjectHandler
	Node       *handlers.NodeHandler
	NodeLink   *handlers.NodeLinkHandler
	Attachment *handlers.AttachmentHandler
	Search     *handlers.SearchHandler
	Import     *handlers.ImportHandler
}

// SetupRouter mounts all API routes. Authentication is enabled when an
// identity service is configured; otherwise the API runs open, which is
// the single-operator deployment mode.
func SetupRouter(router *gin.Engine, h Handlers) {

	//v1 api
	v1 := router.Group("/api/v1")

	apiRoutes := v1.Group("/")
	if os.Getenv("USER_SERVICE_URL") != "" {
		apiRoutes.Use(middleware.AuthMiddleware(services.NewIdentityService()))
	}

	ProjectRoutes(apiRoutes, h.Project, h.Node, h.NodeLink, h.Attachment, h.Import)
	NodeRoutes(apiRoutes, h.Node, h.Attachment)
	NodeLinkRoutes(apiRoutes, h.NodeLink)
	AttachmentRoutes(apiRoutes, h.Attachment)
	SearchRoutes(apiRoutes, h.Search)
}
