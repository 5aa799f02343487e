package service

import (
	"time"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/report"
	"go-bengkel-api/internal/repository"
)

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProducts        int     `json:"total_products"`
	LowStockCount        int     `json:"low_stock_count"`
	StockValuation       float64 `json:"stock_valuation"`
	TodaySales           float64 `json:"today_sales"`
	TodayTransactions    int     `json:"today_transactions"`
	OutstandingReceivable float64 `json:"outstanding_receivable"`
	OutstandingPayable    float64 `json:"outstanding_payable"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
	GetStockMovement(days int) ([]repository.StockMovementData, error)
}

type dashboardService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	receivableRepo  repository.ReceivableRepository
	payableRepo     repository.PayableRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	receivableRepo repository.ReceivableRepository,
	payableRepo repository.PayableRepository,
) DashboardService {
	return &dashboardService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		receivableRepo:  receivableRepo,
		payableRepo:     payableRepo,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	products, err := s.productRepo.FindAll("", nil)
	if err != nil {
		return nil, err
	}
	stock := report.BuildStockReport(products)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sales, err := s.transactionRepo.FindForReport(model.TxSale, &startOfDay, &now)
	if err != nil {
		return nil, err
	}
	var todaySales float64
	for _, t := range sales {
		todaySales += t.Total
	}

	receivableRemaining, err := s.receivableRepo.SumRemaining()
	if err != nil {
		return nil, err
	}
	payableRemaining, err := s.payableRepo.SumRemaining()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:         stock.Summary.TotalProducts,
		LowStockCount:         stock.Summary.LowStockProducts,
		StockValuation:        stock.Summary.TotalStockValue,
		TodaySales:            todaySales,
		TodayTransactions:     len(sales),
		OutstandingReceivable: receivableRemaining,
		OutstandingPayable:    payableRemaining,
	}, nil
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.transactionRepo.GetStockMovement(startDate, endDate)
}
