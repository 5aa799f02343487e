package repository

import (
	"go-bengkel-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayableRepository interface {
	Create(payable *model.Payable) error
	FindAll(supplierID *uuid.UUID, status model.PaymentStatus) ([]model.Payable, error)
	FindByID(id uuid.UUID) (*model.Payable, error)
	FindByTransactionID(tx *gorm.DB, transactionID uuid.UUID) (*model.Payable, error)
	DeleteCascade(id uuid.UUID) error
	ListPayments(payableID uuid.UUID) ([]model.PayablePayment, error)
	SumRemaining() (float64, error)
}

type payableRepo struct {
	db *gorm.DB
}

func NewPayableRepo(db *gorm.DB) PayableRepository {
	return &payableRepo{db}
}

func (r *payableRepo) Create(payable *model.Payable) error {
	return r.db.Create(payable).Error
}

func (r *payableRepo) FindAll(supplierID *uuid.UUID, status model.PaymentStatus) ([]model.Payable, error) {
	var payables []model.Payable
	q := r.db.Order("created_at DESC")
	if supplierID != nil {
		q = q.Where("supplier_id = ?", *supplierID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&payables).Error
	return payables, err
}

func (r *payableRepo) FindByID(id uuid.UUID) (*model.Payable, error) {
	var payable model.Payable
	err := r.db.First(&payable, "id = ?", id).Error
	return &payable, err
}

func (r *payableRepo) FindByTransactionID(tx *gorm.DB, transactionID uuid.UUID) (*model.Payable, error) {
	var payable model.Payable
	err := tx.First(&payable, "transaction_id = ?", transactionID).Error
	return &payable, err
}

func (r *payableRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var payable model.Payable
		if err := tx.First(&payable, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.PayablePayment{}, "payable_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&payable).Error
	})
}

func (r *payableRepo) ListPayments(payableID uuid.UUID) ([]model.PayablePayment, error) {
	var payments []model.PayablePayment
	err := r.db.
		Where("payable_id = ?", payableID).
		Order("date DESC").
		Find(&payments).Error
	return payments, err
}

func (r *payableRepo) SumRemaining() (float64, error) {
	var total float64
	err := r.db.Model(&model.Payable{}).
		Select("COALESCE(SUM(remaining), 0)").
		Scan(&total).Error
	return total, err
}
