package handlers

import (
	"log"
	"net/http"

	"graph_service/internal/store"
	"graph_service/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondStoreError translates a store error into the matching HTTP
// response. Unknown errors are logged and reported as a generic 500 so
// database details never leak to the client.
func respondStoreError(c *gin.Context, err error, message string) {
	switch {
	case store.IsNotFound(err):
		c.JSON(http.StatusNotFound, responses.NewErrorResponse(err.Error(), ""))
	case store.IsConflict(err):
		c.JSON(http.StatusConflict, responses.NewErrorResponse(err.Error(), ""))
	case store.IsInvalid(err):
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse(err.Error(), ""))
	default:
		log.Printf("%s: %v", message, err)
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse(message, ""))
	}
}

// parseIDParam reads a UUID path parameter, answering 400 itself on bad
// input. The bool reports whether the handler should continue.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		log.Printf("Invalid %s format: %s", name, c.Param(name))
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid "+name+" format", ""))
		return uuid.Nil, false
	}
	return id, true
}

// actionBy resolves the authenticated user for event attribution. The
// nil UUID stands in when auth is disabled.
func actionBy(c *gin.Context) uuid.UUID {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
