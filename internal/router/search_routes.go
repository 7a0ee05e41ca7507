package router

import (
	"graph_service/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SearchRoutes defines the search endpoint
func SearchRoutes(rg *gin.RouterGroup, searchHandler *handlers.SearchHandler) {
	rg.GET("/search", searchHandler.Search)
}
