package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// nowFunc is swapped out by tests that need a fixed clock.
var nowFunc = time.Now

func userID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// pathID parses the numeric {id} path segment or writes a 400.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts the wire date format used across the API.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
