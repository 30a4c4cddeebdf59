package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-builder/api/http/presenter"
	"github.com/artem13815/resume-builder/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: the process is up.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.StatusResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, presenter.StatusResponse{Status: "ok"})
}

// Ready: the generation backend answers.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.StatusResponse
// @Failure 503 {object} presenter.StatusResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.svc.Ready(c.UserContext()); err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, presenter.StatusResponse{
			Status:  "not_ready",
			Details: err.Error(),
		})
	}
	return presenter.JSON(c, http.StatusOK, presenter.StatusResponse{Status: "ready"})
}
