package handler

import (
	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"
	"go-bengkel-api/internal/service"
	"go-bengkel-api/pkg/dateutil"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.LedgerService
}

func NewTransactionHandler(s service.LedgerService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{
		Type:   model.TransactionType(c.Query("type")),
		Status: c.Query("status"),
	}
	if start, err := dateutil.Parse(c.Query("startDate")); err == nil {
		if end, err := dateutil.Parse(c.Query("endDate")); err == nil {
			filter.StartDate = &start
			filter.EndDate = &end
		}
	}

	transactions, err := h.service.ListTransactions(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	transaction, err := h.service.GetTransaction(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transaction)
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	transaction, err := h.service.CreateTransaction(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(transaction)
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	if err := h.service.DeleteTransaction(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}

func (h *TransactionHandler) CreatePayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var req service.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payment, err := h.service.ApplyTransactionPayment(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(payment)
}

func (h *TransactionHandler) GetPayments(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	payments, err := h.service.ListTransactionPayments(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}
