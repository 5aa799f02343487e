package repository

import (
	"time"

	"go-bengkel-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows listing; zero values mean "no filter".
type TransactionFilter struct {
	Type      model.TransactionType
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type TransactionRepository interface {
	FindAll(filter TransactionFilter) ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindByInvoiceNumber(invoiceNumber string) (*model.Transaction, error)
	FindForReport(txType model.TransactionType, startDate, endDate *time.Time) ([]model.Transaction, error)
	DeleteCascade(id uuid.UUID) error
	ListPayments(transactionID uuid.UUID) ([]model.Payment, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindAll(filter TransactionFilter) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.
		Preload("Customer").
		Preload("Supplier").
		Preload("Items.Product").
		Order("date DESC")

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("date BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}

	err := q.Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.
		Preload("Customer").
		Preload("Supplier").
		Preload("Items.Product.Category").
		Preload("Payments").
		First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) FindByInvoiceNumber(invoiceNumber string) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.First(&transaction, "invoice_number = ?", invoiceNumber).Error
	return &transaction, err
}

// FindForReport loads COMPLETED transactions of one type with the item and
// category preloads the report builders need.
func (r *transactionRepo) FindForReport(txType model.TransactionType, startDate, endDate *time.Time) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.
		Preload("Customer").
		Preload("Supplier").
		Preload("Items.Product.Category").
		Where("type = ? AND status = ?", txType, model.TxStatusCompleted).
		Order("date DESC")

	if startDate != nil && endDate != nil {
		q = q.Where("date >= ? AND date <= ?", *startDate, *endDate)
	}

	err := q.Find(&transactions).Error
	return transactions, err
}

// DeleteCascade removes the header together with its line items and payment
// history in one unit. Stok TIDAK dikembalikan saat transaksi dihapus.
func (r *transactionRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var transaction model.Transaction
		if err := tx.First(&transaction, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Payment{}, "transaction_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.TransactionItem{}, "transaction_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&transaction).Error
	})
}

func (r *transactionRepo) ListPayments(transactionID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.
		Where("transaction_id = ?", transactionID).
		Order("payment_date ASC, created_at ASC").
		Find(&payments).Error
	return payments, err
}

// GetStockMovement aggregates item quantities per day: purchases come in,
// sales go out.
func (r *transactionRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.TransactionItem{}).
		Select(`
			DATE(transactions.date) as date,
			COALESCE(SUM(CASE WHEN transactions.type = 'PURCHASE' THEN transaction_items.quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN transactions.type = 'SALE' THEN transaction_items.quantity ELSE 0 END), 0) as outbound
		`).
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transactions.date BETWEEN ? AND ?", startDate, endDate).
		Where("transactions.deleted_at IS NULL").
		Group("DATE(transactions.date)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
