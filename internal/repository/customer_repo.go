package repository

import (
	"go-bengkel-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(search string, custType model.CustomerType) ([]model.Customer, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindByCode(code string) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uuid.UUID) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll(search string, custType model.CustomerType) ([]model.Customer, error) {
	var customers []model.Customer
	q := r.db.Order("name ASC")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name LIKE ? OR code LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}
	if custType != "" {
		q = q.Where("type = ?", custType)
	}
	err := q.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	// Sertakan 10 transaksi terakhir untuk halaman detail
	err := r.db.Preload("Transactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("date DESC").Limit(10)
	}).Preload("Transactions.Items").First(&customer, "id = ?", id).Error
	return &customer, err
}

func (r *customerRepo) FindByCode(code string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "code = ?", code).Error
	return &customer, err
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}
