package service

import (
	"time"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/report"
	"go-bengkel-api/internal/repository"
)

// ReportService loads the rows a report needs and delegates the math to the
// pure builders in internal/report.
type ReportService interface {
	SalesReport(startDate, endDate *time.Time) (*report.SalesReport, error)
	PurchasesReport(startDate, endDate *time.Time) (*report.PurchasesReport, error)
	ProfitReport(startDate, endDate *time.Time) (*report.ProfitReport, error)
	StockReport() (*report.StockReport, error)
	ExpensesReport(startDate, endDate *time.Time) (*report.ExpensesReport, error)
	DebtsReport(status model.PaymentStatus) (*report.DebtsReport, error)
}

type reportService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	expenseRepo     repository.ExpenseRepository
	receivableRepo  repository.ReceivableRepository
	payableRepo     repository.PayableRepository
}

func NewReportService(
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	expenseRepo repository.ExpenseRepository,
	receivableRepo repository.ReceivableRepository,
	payableRepo repository.PayableRepository,
) ReportService {
	return &reportService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		expenseRepo:     expenseRepo,
		receivableRepo:  receivableRepo,
		payableRepo:     payableRepo,
	}
}

func (s *reportService) SalesReport(startDate, endDate *time.Time) (*report.SalesReport, error) {
	sales, err := s.transactionRepo.FindForReport(model.TxSale, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return report.BuildSalesReport(sales), nil
}

func (s *reportService) PurchasesReport(startDate, endDate *time.Time) (*report.PurchasesReport, error) {
	purchases, err := s.transactionRepo.FindForReport(model.TxPurchase, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return report.BuildPurchasesReport(purchases), nil
}

func (s *reportService) ProfitReport(startDate, endDate *time.Time) (*report.ProfitReport, error) {
	sales, err := s.transactionRepo.FindForReport(model.TxSale, startDate, endDate)
	if err != nil {
		return nil, err
	}
	purchases, err := s.transactionRepo.FindForReport(model.TxPurchase, startDate, endDate)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindAll(startDate, endDate, "")
	if err != nil {
		return nil, err
	}
	return report.BuildProfitReport(sales, purchases, expenses), nil
}

func (s *reportService) StockReport() (*report.StockReport, error) {
	products, err := s.productRepo.FindAll("", nil)
	if err != nil {
		return nil, err
	}
	return report.BuildStockReport(products), nil
}

func (s *reportService) ExpensesReport(startDate, endDate *time.Time) (*report.ExpensesReport, error) {
	expenses, err := s.expenseRepo.FindAll(startDate, endDate, "")
	if err != nil {
		return nil, err
	}
	return report.BuildExpensesReport(expenses), nil
}

func (s *reportService) DebtsReport(status model.PaymentStatus) (*report.DebtsReport, error) {
	receivables, err := s.receivableRepo.FindAll(nil, status)
	if err != nil {
		return nil, err
	}
	payables, err := s.payableRepo.FindAll(nil, status)
	if err != nil {
		return nil, err
	}
	return report.BuildDebtsReport(receivables, payables), nil
}
