package repository

import (
	"go-bengkel-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceivableRepository interface {
	Create(receivable *model.Receivable) error
	FindAll(customerID *uuid.UUID, status model.PaymentStatus) ([]model.Receivable, error)
	FindByID(id uuid.UUID) (*model.Receivable, error)
	FindByTransactionID(tx *gorm.DB, transactionID uuid.UUID) (*model.Receivable, error)
	DeleteCascade(id uuid.UUID) error
	ListPayments(receivableID uuid.UUID) ([]model.ReceivablePayment, error)
	SumRemaining() (float64, error)
}

type receivableRepo struct {
	db *gorm.DB
}

func NewReceivableRepo(db *gorm.DB) ReceivableRepository {
	return &receivableRepo{db}
}

func (r *receivableRepo) Create(receivable *model.Receivable) error {
	return r.db.Create(receivable).Error
}

func (r *receivableRepo) FindAll(customerID *uuid.UUID, status model.PaymentStatus) ([]model.Receivable, error) {
	var receivables []model.Receivable
	q := r.db.Order("created_at DESC")
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&receivables).Error
	return receivables, err
}

func (r *receivableRepo) FindByID(id uuid.UUID) (*model.Receivable, error) {
	var receivable model.Receivable
	err := r.db.First(&receivable, "id = ?", id).Error
	return &receivable, err
}

// FindByTransactionID resolves the debt record opened by a sale. Runs on the
// caller's tx so the lookup shares the payment transaction's isolation.
func (r *receivableRepo) FindByTransactionID(tx *gorm.DB, transactionID uuid.UUID) (*model.Receivable, error) {
	var receivable model.Receivable
	err := tx.First(&receivable, "transaction_id = ?", transactionID).Error
	return &receivable, err
}

func (r *receivableRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var receivable model.Receivable
		if err := tx.First(&receivable, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ReceivablePayment{}, "receivable_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&receivable).Error
	})
}

func (r *receivableRepo) ListPayments(receivableID uuid.UUID) ([]model.ReceivablePayment, error) {
	var payments []model.ReceivablePayment
	err := r.db.
		Where("receivable_id = ?", receivableID).
		Order("date DESC").
		Find(&payments).Error
	return payments, err
}

func (r *receivableRepo) SumRemaining() (float64, error) {
	var total float64
	err := r.db.Model(&model.Receivable{}).
		Select("COALESCE(SUM(remaining), 0)").
		Scan(&total).Error
	return total, err
}
