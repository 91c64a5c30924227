package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placementhub/placementhub/backend/go-services/internal/applications"
	"github.com/placementhub/placementhub/backend/go-services/internal/authz"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/openings"
	"github.com/placementhub/placementhub/backend/go-services/internal/view"
	"github.com/placementhub/placementhub/backend/go-services/pkg/middleware"
)

type SummaryHandler struct {
	catalog *openings.Service
	ledger  *applications.Service
}

func NewSummaryHandler(catalog *openings.Service, ledger *applications.Service) *SummaryHandler {
	return &SummaryHandler{catalog: catalog, ledger: ledger}
}

func (h *SummaryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/summary", middleware.RequireIdentity(), h.Summary)
}

// Summary projects one snapshot of openings and the acting user's
// applications into the dashboard counters plus the applied-opening set the
// UI uses to flip Apply buttons to Applied.
func (h *SummaryHandler) Summary(c *gin.Context) {
	actingUser, _ := middleware.CurrentUser(c)

	openingList, err := h.catalog.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	apps := make([]models.Application, 0)
	if authz.CanPerform(actingUser.Role, authz.ActionViewOwnApplications) {
		apps, err = h.ledger.ListForStudent(c.Request.Context(), actingUser.ID)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	appliedSet := view.AppliedOpeningIDs(apps)
	applied := make([]string, 0, len(appliedSet))
	for id := range appliedSet {
		applied = append(applied, id)
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":             view.SummaryCounts(openingList, apps, actingUser),
		"applied_opening_ids": applied,
	})
}
