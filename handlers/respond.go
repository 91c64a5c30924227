package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/pkg/logger"
)

// writeError maps the service error taxonomy onto transport codes. Every
// failure is reported inline; nothing here crashes a session.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, faults.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, faults.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "role does not permit this action"})
	case errors.Is(err, faults.ErrAlreadyApplied):
		// the desired end state already holds; 409 lets the client render
		// "your application is recorded" instead of a hard failure
		c.JSON(http.StatusConflict, gin.H{"error": "already applied"})
	case errors.Is(err, faults.ErrBackendUnavailable):
		logger.Errorf("store unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backend unavailable, retry shortly"})
	default:
		logger.Errorf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
