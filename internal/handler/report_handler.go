package handler

import (
	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	start, end := dateRange(c)
	rep, err := h.service.SalesReport(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

func (h *ReportHandler) PurchasesReport(c *fiber.Ctx) error {
	start, end := dateRange(c)
	rep, err := h.service.PurchasesReport(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

func (h *ReportHandler) ProfitReport(c *fiber.Ctx) error {
	start, end := dateRange(c)
	rep, err := h.service.ProfitReport(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	rep, err := h.service.StockReport()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

func (h *ReportHandler) ExpensesReport(c *fiber.Ctx) error {
	start, end := dateRange(c)
	rep, err := h.service.ExpensesReport(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

func (h *ReportHandler) DebtsReport(c *fiber.Ctx) error {
	rep, err := h.service.DebtsReport(model.PaymentStatus(c.Query("status")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}
