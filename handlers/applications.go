package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placementhub/placementhub/backend/go-services/internal/applications"
	"github.com/placementhub/placementhub/backend/go-services/internal/authz"
	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/pkg/logger"
	"github.com/placementhub/placementhub/backend/go-services/pkg/metrics"
	"github.com/placementhub/placementhub/backend/go-services/pkg/middleware"
)

type ApplicationsHandler struct {
	ledger *applications.Service
}

func NewApplicationsHandler(ledger *applications.Service) *ApplicationsHandler {
	return &ApplicationsHandler{ledger: ledger}
}

func (h *ApplicationsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/applications", middleware.RequireIdentity(), h.ListMine)
	rg.POST("/applications", middleware.RequireIdentity(), h.Apply)
}

// ListMine returns the acting student's applications. Other roles read
// application state through flows outside this service, so the gate applies
// here too.
func (h *ApplicationsHandler) ListMine(c *gin.Context) {
	actingUser, _ := middleware.CurrentUser(c)
	if !authz.CanPerform(actingUser.Role, authz.ActionViewOwnApplications) {
		writeError(c, faults.ErrForbidden)
		return
	}
	apps, err := h.ledger.ListForStudent(c.Request.Context(), actingUser.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

type applyRequest struct {
	OpeningID string `json:"opening_id" binding:"required"`
}

// Apply records one application for the acting student. A repeat apply for
// the same opening answers 409, never a silent success.
func (h *ApplicationsHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actingUser, _ := middleware.CurrentUser(c)

	created, err := h.ledger.Apply(c.Request.Context(), actingUser, req.OpeningID)
	if err != nil {
		if errors.Is(err, faults.ErrAlreadyApplied) {
			metrics.ApplicationsDuplicate.Inc()
		}
		writeError(c, err)
		return
	}
	metrics.ApplicationsCreated.Inc()
	logger.Infof("application created: id=%s student=%s opening=%s", created.ID, actingUser.ID, req.OpeningID)
	c.JSON(http.StatusCreated, created)
}
