package handler

import (
	"time"

	"go-bengkel-api/internal/service"
	"go-bengkel-api/pkg/dateutil"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

// dateRange reads the optional startDate/endDate query params; both must be
// present for the range to apply, endDate inclusive.
func dateRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	start, err := dateutil.Parse(c.Query("startDate"))
	if err != nil {
		return nil, nil
	}
	end, err := dateutil.Parse(c.Query("endDate"))
	if err != nil {
		return nil, nil
	}
	end = dateutil.EndOfRange(end)
	return &start, &end
}

func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	start, end := dateRange(c)
	expenses, err := h.service.ListExpenses(start, end, c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	expense, err := h.service.GetExpense(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var req service.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	expense, err := h.service.CreateExpense(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(expense)
}

func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	var req service.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	expense, err := h.service.UpdateExpense(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	if err := h.service.DeleteExpense(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}
