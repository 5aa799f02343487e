package service

import (
	"errors"
	"time"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/ws"
	"go-bengkel-api/pkg/dateutil"
	"go-bengkel-api/pkg/validator"

	"go-bengkel-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateReceivableRequest struct {
	CustomerID   uuid.UUID `json:"customer_id" validate:"uuid_required"`
	CustomerName string    `json:"customer_name"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	PaidAmount   float64   `json:"paid_amount" validate:"gte=0"`
	DueDate      string    `json:"due_date"`
	Status       model.PaymentStatus `json:"status" validate:"omitempty,oneof=PAID UNPAID INSTALLMENT"`
	Description  string    `json:"description"`
}

type CreatePayableRequest struct {
	SupplierID   uuid.UUID `json:"supplier_id" validate:"uuid_required"`
	SupplierName string    `json:"supplier_name"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	PaidAmount   float64   `json:"paid_amount" validate:"gte=0"`
	DueDate      string    `json:"due_date"`
	Status       model.PaymentStatus `json:"status" validate:"omitempty,oneof=PAID UNPAID INSTALLMENT"`
	Description  string    `json:"description"`
}

type DebtService interface {
	CreateReceivable(req *CreateReceivableRequest) (*model.Receivable, error)
	ListReceivables(customerID *uuid.UUID, status model.PaymentStatus) ([]model.Receivable, error)
	GetReceivable(id uuid.UUID) (*model.Receivable, error)
	DeleteReceivable(id uuid.UUID) error
	ApplyReceivablePayment(id uuid.UUID, req *PaymentRequest) (*model.ReceivablePayment, error)
	ListReceivablePayments(id uuid.UUID) ([]model.ReceivablePayment, error)

	CreatePayable(req *CreatePayableRequest) (*model.Payable, error)
	ListPayables(supplierID *uuid.UUID, status model.PaymentStatus) ([]model.Payable, error)
	GetPayable(id uuid.UUID) (*model.Payable, error)
	DeletePayable(id uuid.UUID) error
	ApplyPayablePayment(id uuid.UUID, req *PaymentRequest) (*model.PayablePayment, error)
	ListPayablePayments(id uuid.UUID) ([]model.PayablePayment, error)
}

type debtService struct {
	receivableRepo repository.ReceivableRepository
	payableRepo    repository.PayableRepository
	customerRepo   repository.CustomerRepository
	supplierRepo   repository.SupplierRepository
	db             *gorm.DB
	wsHub          *ws.Hub
}

func NewDebtService(
	receivableRepo repository.ReceivableRepository,
	payableRepo repository.PayableRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	db *gorm.DB,
	hub *ws.Hub,
) DebtService {
	return &debtService{
		receivableRepo: receivableRepo,
		payableRepo:    payableRepo,
		customerRepo:   customerRepo,
		supplierRepo:   supplierRepo,
		db:             db,
		wsHub:          hub,
	}
}

// settleColumns is the single place deciding the post-payment state: PAID
// with paid_amount and remaining snapped to exact values when nothing
// remains, INSTALLMENT for any partial balance. The CASE branches evaluate
// against the pre-update row, so the decrement stays relative and safe under
// concurrent payments. Receivable dan payable memakai nama kolom yang sama.
func settleColumns(amount float64) map[string]interface{} {
	return map[string]interface{}{
		"paid_amount": gorm.Expr(
			"CASE WHEN remaining - ? <= ? THEN amount ELSE paid_amount + ? END",
			amount, amountTolerance, amount),
		"remaining": gorm.Expr(
			"CASE WHEN remaining - ? <= ? THEN 0 ELSE remaining - ? END",
			amount, amountTolerance, amount),
		"status": gorm.Expr(
			"CASE WHEN remaining - ? <= ? THEN ? ELSE ? END",
			amount, amountTolerance, string(model.PaymentPaid), string(model.PaymentInstallment)),
	}
}

func (s *debtService) CreateReceivable(req *CreateReceivableRequest) (*model.Receivable, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if req.PaidAmount > req.Amount {
		return nil, ErrAmountExceedsRemaining
	}

	name := req.CustomerName
	if name == "" {
		customer, err := s.customerRepo.FindByID(req.CustomerID)
		if err != nil {
			return nil, ErrNotFound
		}
		name = customer.Name
	}

	status := req.Status
	if status == "" {
		status = model.PaymentUnpaid
	}

	receivable := &model.Receivable{
		CustomerID:   req.CustomerID,
		CustomerName: name,
		Amount:       req.Amount,
		PaidAmount:   req.PaidAmount,
		Remaining:    req.Amount - req.PaidAmount,
		Status:       status,
		Description:  req.Description,
	}
	if req.DueDate != "" {
		if due, err := dateutil.Parse(req.DueDate); err == nil {
			receivable.DueDate = &due
		}
	}

	if err := s.receivableRepo.Create(receivable); err != nil {
		return nil, err
	}
	return receivable, nil
}

func (s *debtService) ListReceivables(customerID *uuid.UUID, status model.PaymentStatus) ([]model.Receivable, error) {
	return s.receivableRepo.FindAll(customerID, status)
}

func (s *debtService) GetReceivable(id uuid.UUID) (*model.Receivable, error) {
	receivable, err := s.receivableRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return receivable, err
}

func (s *debtService) DeleteReceivable(id uuid.UUID) error {
	err := s.receivableRepo.DeleteCascade(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ApplyReceivablePayment menempelkan cicilan ke piutang: tambah baris payment,
// geser saldo, dan tentukan status baru — semuanya atomik.
func (s *debtService) ApplyReceivablePayment(id uuid.UUID, req *PaymentRequest) (*model.ReceivablePayment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var payment *model.ReceivablePayment
	var paidOff bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var receivable model.Receivable
		if err := tx.First(&receivable, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if req.Amount > receivable.Remaining+amountTolerance {
			return ErrAmountExceedsRemaining
		}

		// Satu write: CASE membaca baris pre-update, pelunasan men-snap
		// paid_amount, remaining, dan status sekaligus.
		res := tx.Model(&model.Receivable{}).
			Where("id = ? AND remaining >= ?", id, req.Amount).
			Updates(settleColumns(req.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAmountExceedsRemaining
		}

		if err := tx.First(&receivable, "id = ?", id).Error; err != nil {
			return err
		}
		paidOff = receivable.Status == model.PaymentPaid

		payment = &model.ReceivablePayment{
			ReceivableID:  id,
			Amount:        req.Amount,
			PaymentMethod: defaultMethod(req.PaymentMethod),
			Notes:         req.Notes,
			Date:          dateutil.ParseOr(req.PaymentDate, time.Now()),
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	if paidOff && s.wsHub != nil {
		go s.wsHub.BroadcastEvent("debt_paid", map[string]interface{}{
			"kind": "receivable",
			"id":   id,
		})
	}

	return payment, nil
}

func (s *debtService) ListReceivablePayments(id uuid.UUID) ([]model.ReceivablePayment, error) {
	if _, err := s.receivableRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.receivableRepo.ListPayments(id)
}

func (s *debtService) CreatePayable(req *CreatePayableRequest) (*model.Payable, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if req.PaidAmount > req.Amount {
		return nil, ErrAmountExceedsRemaining
	}

	name := req.SupplierName
	if name == "" {
		supplier, err := s.supplierRepo.FindByID(req.SupplierID)
		if err != nil {
			return nil, ErrNotFound
		}
		name = supplier.Name
	}

	status := req.Status
	if status == "" {
		status = model.PaymentUnpaid
	}

	payable := &model.Payable{
		SupplierID:   req.SupplierID,
		SupplierName: name,
		Amount:       req.Amount,
		PaidAmount:   req.PaidAmount,
		Remaining:    req.Amount - req.PaidAmount,
		Status:       status,
		Description:  req.Description,
	}
	if req.DueDate != "" {
		if due, err := dateutil.Parse(req.DueDate); err == nil {
			payable.DueDate = &due
		}
	}

	if err := s.payableRepo.Create(payable); err != nil {
		return nil, err
	}
	return payable, nil
}

func (s *debtService) ListPayables(supplierID *uuid.UUID, status model.PaymentStatus) ([]model.Payable, error) {
	return s.payableRepo.FindAll(supplierID, status)
}

func (s *debtService) GetPayable(id uuid.UUID) (*model.Payable, error) {
	payable, err := s.payableRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return payable, err
}

func (s *debtService) DeletePayable(id uuid.UUID) error {
	err := s.payableRepo.DeleteCascade(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *debtService) ApplyPayablePayment(id uuid.UUID, req *PaymentRequest) (*model.PayablePayment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var payment *model.PayablePayment
	var paidOff bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var payable model.Payable
		if err := tx.First(&payable, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if req.Amount > payable.Remaining+amountTolerance {
			return ErrAmountExceedsRemaining
		}

		res := tx.Model(&model.Payable{}).
			Where("id = ? AND remaining >= ?", id, req.Amount).
			Updates(settleColumns(req.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAmountExceedsRemaining
		}

		if err := tx.First(&payable, "id = ?", id).Error; err != nil {
			return err
		}
		paidOff = payable.Status == model.PaymentPaid

		payment = &model.PayablePayment{
			PayableID:     id,
			Amount:        req.Amount,
			PaymentMethod: defaultMethod(req.PaymentMethod),
			Notes:         req.Notes,
			Date:          dateutil.ParseOr(req.PaymentDate, time.Now()),
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	if paidOff && s.wsHub != nil {
		go s.wsHub.BroadcastEvent("debt_paid", map[string]interface{}{
			"kind": "payable",
			"id":   id,
		})
	}

	return payment, nil
}

func (s *debtService) ListPayablePayments(id uuid.UUID) ([]model.PayablePayment, error) {
	if _, err := s.payableRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.payableRepo.ListPayments(id)
}

func defaultMethod(method string) string {
	if method == "" {
		return "CASH"
	}
	return method
}
