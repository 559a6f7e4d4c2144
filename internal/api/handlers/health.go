package handlers

import (
	"context"
	"net/http"

	"github.com/osa911/clipdesk/internal/api/dto/common"
	"github.com/osa911/clipdesk/internal/utils"
	"github.com/osa911/clipdesk/internal/version"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse reports the running build alongside the status
type HealthResponse struct {
	Status string            `json:"status"`
	Build  version.BuildInfo `json:"build"`
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		utils.HandleAPIError(c, err, http.StatusServiceUnavailable, common.ErrCodeUnavailable, "Database connection error")
		return
	}

	utils.HandleSuccess(c, HealthResponse{
		Status: "ok",
		Build:  version.GetBuildInfo(),
	})
}
