package management

import (
	"errors"

	"jalsetu/core/logger"
	"jalsetu/core/reconcile"
	"jalsetu/core/records"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DutyRequest is the body of a duty status change.
type DutyRequest struct {
	DutyStatus string `json:"duty_status" example:"On Duty"`
}

// Handler handles HTTP requests for staff and task management.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the management routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/management")
	group.Get("/:tenant", h.HandleDashboard)
	group.Post("/:tenant/tasks/:task/complete", h.HandleCompleteTask)
	group.Put("/:tenant/staff/:staff/duty", h.HandleSetDuty)
}

// HandleDashboard returns staff, duty counts and assigned tasks.
// @Summary Management Dashboard
// @Description Lists staff with duty breakdown and tasks with resolved assignee names ("Unassigned" when none resolves).
// @Tags management
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Success 200 {object} management.Dashboard "Management Dashboard"
// @Router /management/{tenant} [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	return c.JSON(h.service.Dashboard(c.UserContext(), c.Params("tenant")))
}

// HandleCompleteTask marks a task as completed.
// @Summary Complete Task
// @Description Sets the task to Completed, stamps the completion time and credits the assigned staff member.
// @Tags management
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Param task path string true "Task id"
// @Success 200 {object} reconcile.Task "Updated Task"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /management/{tenant}/tasks/{task}/complete [post]
func (h *Handler) HandleCompleteTask(c *fiber.Ctx) error {
	tenant, taskID := c.Params("tenant"), c.Params("task")
	l := logger.WithTenant(logger.WithRayID(h.service.logger, c), tenant)

	task, err := h.service.CompleteTask(c.UserContext(), tenant, taskID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to complete task", zap.String("task", taskID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Task completed", zap.String("task", taskID))
	return c.JSON(task)
}

// HandleSetDuty changes a staff member's duty status.
// @Summary Set Duty Status
// @Description Puts a staff member on or off duty.
// @Tags management
// @Accept json
// @Produce json
// @Param tenant path string true "Panchayat LGD code"
// @Param staff path string true "Staff id"
// @Param body body management.DutyRequest true "New duty status"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /management/{tenant}/staff/{staff}/duty [put]
func (h *Handler) HandleSetDuty(c *fiber.Ctx) error {
	tenant, staffID := c.Params("tenant"), c.Params("staff")
	l := logger.WithTenant(logger.WithRayID(h.service.logger, c), tenant)

	var req DutyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	status, ok := reconcile.ParseDutyStatus(req.DutyStatus)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown duty status: " + req.DutyStatus})
	}

	if err := h.service.SetDutyStatus(c.UserContext(), tenant, staffID, status); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to update duty status", zap.String("staff", staffID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Duty status updated", zap.String("staff", staffID), zap.String("duty_status", string(status)))
	return c.JSON(fiber.Map{"staff_id": staffID, "duty_status": string(status)})
}
