package billing

import (
	"errors"

	"jalsetu/core/logger"
	"jalsetu/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for billing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the billing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/billing")
	group.Get("/:tenant", h.HandleDashboard)
	group.Get("/:tenant/subscribers/:subscriber", h.HandleSubscriber)
}

// HandleDashboard returns the reconciled billing dashboard of a Panchayat.
// @Summary Billing Dashboard
// @Description Reconciles usage periods with completed payments and returns the rows, summary cards, payment share and revenue trend.
// @Tags billing
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Param now query string false "Evaluation time (RFC 3339 or YYYY-MM-DD)"
// @Param status query string false "Only list rows with this status (Paid, Pending, Overdue)"
// @Success 200 {object} billing.Dashboard "Billing Dashboard"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /billing/{tenant} [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	tenant := c.Params("tenant")
	l := logger.WithTenant(logger.WithRayID(h.service.logger, c), tenant)

	now, err := h.service.EvaluationTime(c.Query("now"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var filter *reconcile.UsageStatus
	if raw := c.Query("status"); raw != "" {
		status, ok := reconcile.ParseUsageStatus(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown status: " + raw})
		}
		filter = &status
	}

	dash := h.service.Dashboard(c.UserContext(), tenant, now, filter)
	l.Debug("Billing dashboard built",
		zap.Int("bills", dash.Summary.TotalBills),
		zap.Int("overdue", dash.Summary.OverdueCount),
	)
	return c.JSON(dash)
}

// HandleSubscriber returns the billing view of one household.
// @Summary Subscriber Billing
// @Description Returns a household's reconciled periods, their summary and the household's payment history.
// @Tags billing
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Param subscriber path string true "Household / subscriber id"
// @Param now query string false "Evaluation time (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} billing.SubscriberView "Subscriber View"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Usage Unavailable"
// @Router /billing/{tenant}/subscribers/{subscriber} [get]
func (h *Handler) HandleSubscriber(c *fiber.Ctx) error {
	tenant := c.Params("tenant")
	subscriber := c.Params("subscriber")
	l := logger.WithTenant(logger.WithRayID(h.service.logger, c), tenant)

	now, err := h.service.EvaluationTime(c.Query("now"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.service.Subscriber(c.UserContext(), tenant, subscriber, now)
	if err != nil {
		if errors.Is(err, ErrUnknownSubscriber) {
			l.Info("Unknown subscriber", zap.String("subscriber", subscriber))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, ErrUsageUnavailable) {
			l.Warn("Subscriber lookup on degraded usage", zap.String("subscriber", subscriber))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Subscriber billing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(view)
}
