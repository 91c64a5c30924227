package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/openings"
	"github.com/placementhub/placementhub/backend/go-services/pkg/logger"
	"github.com/placementhub/placementhub/backend/go-services/pkg/metrics"
	"github.com/placementhub/placementhub/backend/go-services/pkg/middleware"
)

type OpeningsHandler struct {
	catalog *openings.Service
}

func NewOpeningsHandler(catalog *openings.Service) *OpeningsHandler {
	return &OpeningsHandler{catalog: catalog}
}

func (h *OpeningsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/openings", h.List)
	rg.POST("/openings", middleware.RequireIdentity(), h.Create)
}

// List is an unauthenticated read; clients filter on their side.
func (h *OpeningsHandler) List(c *gin.Context) {
	list, err := h.catalog.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create posts an opening. The catalog re-checks the role gate even though
// the UI only offers the form to the placement cell.
func (h *OpeningsHandler) Create(c *gin.Context) {
	var draft models.OpeningDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actingUser, _ := middleware.CurrentUser(c)

	created, err := h.catalog.Create(c.Request.Context(), draft, actingUser)
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.OpeningsCreated.Inc()
	logger.Infof("opening created: id=%s by=%s", created.ID, actingUser.ID)
	c.JSON(http.StatusCreated, created)
}
