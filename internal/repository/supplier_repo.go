package repository

import (
	"go-bengkel-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(search string) ([]model.Supplier, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	FindByCode(code string) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(search string) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	q := r.db.Order("name ASC")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name LIKE ? OR code LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}
	err := q.Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.Preload("Transactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("date DESC").Limit(10)
	}).Preload("Transactions.Items").First(&supplier, "id = ?", id).Error
	return &supplier, err
}

func (r *supplierRepo) FindByCode(code string) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "code = ?", code).Error
	return &supplier, err
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}
