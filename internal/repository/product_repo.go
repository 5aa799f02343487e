package repository

import (
	"errors"

	"go-bengkel-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned by DeductStock when the conditional
// decrement matches no row because the remaining stock is below the
// requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock remaining")

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(search string, categoryID *uuid.UUID) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCode(code string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	AddStock(tx *gorm.DB, id uuid.UUID, quantity int) error
	DeductStock(tx *gorm.DB, id uuid.UUID, quantity int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(search string, categoryID *uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Preload("Category").Order("name ASC")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name LIKE ? OR code LIKE ?", pattern, pattern)
	}
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "code = ?", code).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// AddStock menambah stok dalam satu statement atomik (berjalan dalam tx).
func (r *productRepo) AddStock(tx *gorm.DB, id uuid.UUID, quantity int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeductStock decrements only when enough stock remains. The guard lives in
// the WHERE clause so two concurrent sales of the same product cannot
// oversell between a read and a write.
func (r *productRepo) DeductStock(tx *gorm.DB, id uuid.UUID, quantity int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Bedakan produk tidak ada vs stok kurang
		var count int64
		if err := tx.Model(&model.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}
