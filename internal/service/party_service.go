package service

import (
	"errors"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"
	"go-bengkel-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartyService interface {
	CreateCustomer(req *model.Customer) error
	ListCustomers(search string, custType model.CustomerType) ([]model.Customer, error)
	GetCustomer(id uuid.UUID) (*model.Customer, error)
	UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error

	CreateSupplier(req *model.Supplier) error
	ListSuppliers(search string) ([]model.Supplier, error)
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *model.Supplier) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error
}

type partyService struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

func NewPartyService(customerRepo repository.CustomerRepository, supplierRepo repository.SupplierRepository) PartyService {
	return &partyService{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *partyService) CreateCustomer(req *model.Customer) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	existing, _ := s.customerRepo.FindByCode(req.Code)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrDuplicateCode
	}
	if req.Type == "" {
		req.Type = model.CustomerGeneral
	}
	return s.customerRepo.Create(req)
}

func (s *partyService) ListCustomers(search string, custType model.CustomerType) ([]model.Customer, error) {
	return s.customerRepo.FindAll(search, custType)
}

func (s *partyService) GetCustomer(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return customer, err
}

func (s *partyService) UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	customer.Code = req.Code
	customer.Name = req.Name
	customer.Type = req.Type
	customer.CompanyName = req.CompanyName
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *partyService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.customerRepo.Delete(id)
}

func (s *partyService) CreateSupplier(req *model.Supplier) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	existing, _ := s.supplierRepo.FindByCode(req.Code)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrDuplicateCode
	}
	return s.supplierRepo.Create(req)
}

func (s *partyService) ListSuppliers(search string) ([]model.Supplier, error) {
	return s.supplierRepo.FindAll(search)
}

func (s *partyService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return supplier, err
}

func (s *partyService) UpdateSupplier(id uuid.UUID, req *model.Supplier) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	supplier.Code = req.Code
	supplier.Name = req.Name
	supplier.CompanyName = req.CompanyName
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Address = req.Address
	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *partyService) DeleteSupplier(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.supplierRepo.Delete(id)
}
