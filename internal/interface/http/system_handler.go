package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
	"github.com/oksasatya/go-bucketlist-api/pkg/response"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	Store   Pinger
	AppName string
	Logger  *logrus.Logger
}

func NewSystemHandler(store Pinger, appName string, logger *logrus.Logger) *SystemHandler {
	return &SystemHandler{Store: store, AppName: appName, Logger: logger}
}

// Index GET /api/v1/
func (h *SystemHandler) Index(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"app": h.AppName},
		"Welcome to the bucketlist API. Register or log in to get started.", nil)
}

// Health GET /api/v1/healthz
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		helpers.LogError(h.Logger, "health check failed", err, nil)
		response.Error[any](c, http.StatusServiceUnavailable, "store unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy", nil)
}
