package overview

import (
	"jalsetu/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the home dashboard.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the overview routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/overview/:tenant", h.HandleOverview)
}

// HandleOverview returns the home dashboard cards.
// @Summary Panchayat Overview
// @Description Billing summary, payment share, staff on duty, task and complaint counts, today's water supply, the weekly usage trend and the tank cleaning card in a single call.
// @Tags overview
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Param now query string false "Evaluation time (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} overview.Overview "Overview"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /overview/{tenant} [get]
func (h *Handler) HandleOverview(c *fiber.Ctx) error {
	tenant := c.Params("tenant")

	now, err := h.service.EvaluationTime(c.Query("now"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ov := h.service.Overview(c.UserContext(), tenant, now)
	if len(ov.Degraded) > 0 {
		logger.WithTenant(logger.WithRayID(h.service.logger, c), tenant).
			Warn("Overview served from degraded snapshot", zap.Any("degraded", ov.Degraded))
	}
	return c.JSON(ov)
}
