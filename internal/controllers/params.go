package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack-be/internal/middleware"
)

// parseDate accepts the formats clients send for date query parameters
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
}

// currentUserID reads the authenticated user's id set by the auth middleware
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// internalError logs the failure server-side and returns the generic envelope.
// Details never reach the client.
func internalError(c *gin.Context, err error) {
	log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
