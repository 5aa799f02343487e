package handler

import (
	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DebtHandler struct {
	service service.DebtService
}

func NewDebtHandler(s service.DebtService) *DebtHandler {
	return &DebtHandler{service: s}
}

func queryPartyID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := parseUUID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (h *DebtHandler) GetReceivables(c *fiber.Ctx) error {
	customerID, err := queryPartyID(c, "customerId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	receivables, err := h.service.ListReceivables(customerID, model.PaymentStatus(c.Query("status")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(receivables)
}

func (h *DebtHandler) GetReceivable(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid receivable ID"})
	}

	receivable, err := h.service.GetReceivable(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(receivable)
}

func (h *DebtHandler) CreateReceivable(c *fiber.Ctx) error {
	var req service.CreateReceivableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	receivable, err := h.service.CreateReceivable(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(receivable)
}

func (h *DebtHandler) DeleteReceivable(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid receivable ID"})
	}

	if err := h.service.DeleteReceivable(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Receivable deleted"})
}

func (h *DebtHandler) CreateReceivablePayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid receivable ID"})
	}

	var req service.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payment, err := h.service.ApplyReceivablePayment(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(payment)
}

func (h *DebtHandler) GetReceivablePayments(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid receivable ID"})
	}

	payments, err := h.service.ListReceivablePayments(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

func (h *DebtHandler) GetPayables(c *fiber.Ctx) error {
	supplierID, err := queryPartyID(c, "supplierId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	payables, err := h.service.ListPayables(supplierID, model.PaymentStatus(c.Query("status")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payables)
}

func (h *DebtHandler) GetPayable(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payable ID"})
	}

	payable, err := h.service.GetPayable(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payable)
}

func (h *DebtHandler) CreatePayable(c *fiber.Ctx) error {
	var req service.CreatePayableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payable, err := h.service.CreatePayable(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(payable)
}

func (h *DebtHandler) DeletePayable(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payable ID"})
	}

	if err := h.service.DeletePayable(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payable deleted"})
}

func (h *DebtHandler) CreatePayablePayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payable ID"})
	}

	var req service.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payment, err := h.service.ApplyPayablePayment(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(payment)
}

func (h *DebtHandler) GetPayablePayments(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payable ID"})
	}

	payments, err := h.service.ListPayablePayments(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}
