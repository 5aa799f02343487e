package service

import (
	"errors"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"
	"go-bengkel-api/internal/ws"
	"go-bengkel-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListProducts(search string, categoryID *uuid.UUID) ([]model.Product, error)
	DeleteProduct(id uuid.UUID) error

	CreateCategory(req *model.Category) error
	ListCategories() ([]model.Category, error)
	GetCategory(id uuid.UUID) (*model.Category, error)
	UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, db *gorm.DB, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	// 1. Validasi Struct Dasar
	if err := validator.Check(req); err != nil {
		return err
	}

	// 2. Kategori harus ada
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return ErrNotFound
	}

	// 3. Cek duplikasi kode produk
	existing, _ := s.productRepo.FindByCode(req.Code)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrDuplicateCode
	}

	if req.MinStock == 0 {
		req.MinStock = 5
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent("product_created", map[string]interface{}{
			"id":    req.ID,
			"code":  req.Code,
			"name":  req.Name,
			"stock": req.Stock,
		})
	}

	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	var updated *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return ErrNotFound
		}

		// Kode boleh ganti asal tidak bentrok dengan produk lain. Lookup
		// harus lewat tx supaya cek dan Save melihat state yang sama.
		if req.Code != existing.Code {
			var other model.Product
			err := tx.First(&other, "code = ? AND id <> ?", req.Code, id).Error
			if err == nil {
				return ErrDuplicateCode
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		existing.Code = req.Code
		existing.Name = req.Name
		existing.Description = req.Description
		existing.CategoryID = req.CategoryID
		existing.Stock = req.Stock
		existing.MinStock = req.MinStock
		existing.PurchasePrice = req.PurchasePrice
		existing.SellingPrice = req.SellingPrice

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent("product_updated", map[string]interface{}{
			"id":    updated.ID,
			"code":  updated.Code,
			"stock": updated.Stock,
		})
	}

	return updated, nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return product, err
}

func (s *catalogService) ListProducts(search string, categoryID *uuid.UUID) ([]model.Product, error) {
	return s.productRepo.FindAll(search, categoryID)
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *catalogService) CreateCategory(req *model.Category) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	return s.categoryRepo.Create(req)
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) GetCategory(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return category, err
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *model.Category) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	category.Name = req.Name
	category.Description = req.Description
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.categoryRepo.Delete(id)
}
