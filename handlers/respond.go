// handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fundilink/backend"
)

// respondError maps service errors onto HTTP responses: an auth gate turns
// into 401, a structured upstream rejection keeps its status and detail,
// an unreachable upstream turns into 503, anything else is a 400 with the
// message as-is (validation messages are written for end users).
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backend.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "authentication required",
			"message": "Please log in to continue.",
		})
	case errors.Is(err, backend.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "service unavailable",
			"message": "The service is temporarily unavailable. Please try again.",
		})
	default:
		if apiErr, ok := backend.AsAPIError(err); ok {
			c.JSON(apiErr.Status, gin.H{
				"error":   "request rejected",
				"message": apiErr.Detail,
				"fields":  apiErr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"message": err.Error(),
		})
	}
}
