package system

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "storefront-api"
	serviceVersion = "1.0.0"
)

// InfoResponse and HealthResponse are served raw, outside the API
// envelope, matching what deployment probes expect.
type InfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Name:      serviceName,
		Version:   serviceVersion,
		Status:    "running",
		Timestamp: time.Now().UnixMilli(),
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: time.Now().UnixMilli(),
	})
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
}
