package complaints

import (
	"errors"

	"jalsetu/core/logger"
	"jalsetu/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for complaints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the complaint routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/complaints")
	group.Get("/:tenant", h.HandleList)
	group.Post("/:tenant", h.HandleSubmit)
}

// HandleList returns the complaints of a Panchayat.
// @Summary List Complaints
// @Description Lists complaints with resolved assignee names, status counts and resolution rate.
// @Tags complaints
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Param category query string false "Household or Leakage"
// @Success 200 {object} complaints.Report "Complaint Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /complaints/{tenant} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	var category reconcile.ComplaintCategory
	if raw := c.Query("category"); raw != "" {
		parsed, ok := reconcile.ParseComplaintCategory(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown category: " + raw})
		}
		category = parsed
	}

	return c.JSON(h.service.List(c.UserContext(), c.Params("tenant"), category))
}

// HandleSubmit stores a new complaint.
// @Summary Submit Complaint
// @Description Records a complaint with status Pending. GPS coordinates are optional.
// @Tags complaints
// @Accept json
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Param body body complaints.SubmitRequest true "Complaint"
// @Success 201 {object} reconcile.Complaint "Created Complaint"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /complaints/{tenant} [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	tenant := c.Params("tenant")
	l := logger.WithTenant(logger.WithRayID(h.service.logger, c), tenant)

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	created, err := h.service.Submit(c.UserContext(), tenant, req)
	if err != nil {
		if errors.Is(err, ErrInvalidComplaint) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to submit complaint", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Complaint submitted", zap.String("complaint", created.ID), zap.String("category", string(created.Category)))
	return c.Status(fiber.StatusCreated).JSON(created)
}
