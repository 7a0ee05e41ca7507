package handlers

import (
	"net/http"

	"graph_service/internal/store"
	"graph_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SearchHandler struct {
	db *gorm.DB
}

func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{db: db}
}

// Search runs a case-insensitive substring search across nodes,
// attachments and projects. A blank term yields an empty result list.
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := store.Search(h.db, c.Query("q"))
	if err != nil {
		respondStoreError(c, err, "Search failed")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Search completed successfully", results))
}
