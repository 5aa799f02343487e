package service

import (
	"testing"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"
	"go-bengkel-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (CatalogService, model.Category) {
	t.Helper()
	db := setupTestDB(t)
	category := model.Category{Name: "Oli & Pelumas"}
	require.NoError(t, db.Create(&category).Error)
	svc := NewCatalogService(repository.NewProductRepo(db), repository.NewCategoryRepo(db), db, nil)
	return svc, category
}

func TestCreateProductDefaultsAndDuplicates(t *testing.T) {
	svc, category := newCatalogService(t)

	product := &model.Product{
		Code: "OLI-001", Name: "Oli Mesin 10W-40", CategoryID: category.ID,
		PurchasePrice: 45000, SellingPrice: 65000,
	}
	require.NoError(t, svc.CreateProduct(product))
	assert.Equal(t, 5, product.MinStock) // default minimum

	dup := &model.Product{
		Code: "OLI-001", Name: "Oli Lain", CategoryID: category.ID,
		PurchasePrice: 1, SellingPrice: 2,
	}
	assert.ErrorIs(t, svc.CreateProduct(dup), ErrDuplicateCode)
}

func TestCreateProductRequiresExistingCategory(t *testing.T) {
	svc, _ := newCatalogService(t)

	err := svc.CreateProduct(&model.Product{
		Code: "OLI-002", Name: "Oli Gardan", CategoryID: uuid.New(),
		PurchasePrice: 12000, SellingPrice: 20000,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	svc, category := newCatalogService(t)

	err := svc.CreateProduct(&model.Product{
		Name: "Tanpa Kode", CategoryID: category.ID,
	})
	assert.ErrorIs(t, err, validator.ErrValidation)
}

func TestUpdateProductCodeCollision(t *testing.T) {
	svc, category := newCatalogService(t)

	first := &model.Product{Code: "A-001", Name: "Produk A", CategoryID: category.ID}
	require.NoError(t, svc.CreateProduct(first))
	second := &model.Product{Code: "B-001", Name: "Produk B", CategoryID: category.ID}
	require.NoError(t, svc.CreateProduct(second))

	second.Code = "A-001"
	_, err := svc.UpdateProduct(second.ID, second)
	assert.ErrorIs(t, err, ErrDuplicateCode)

	second.Code = "B-002"
	updated, err := svc.UpdateProduct(second.ID, second)
	require.NoError(t, err)
	assert.Equal(t, "B-002", updated.Code)
}
