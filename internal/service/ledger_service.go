package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"
	"go-bengkel-api/internal/ws"
	"go-bengkel-api/pkg/dateutil"
	"go-bengkel-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// amountTolerance absorbs float rounding when caller-supplied totals are
// checked against the recomputed ones.
const amountTolerance = 0.01

type TransactionItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Price     float64   `json:"price" validate:"gte=0"`
	Discount  float64   `json:"discount" validate:"gte=0"`
	Subtotal  float64   `json:"subtotal" validate:"gte=0"`
}

type CreateTransactionRequest struct {
	InvoiceNumber string                 `json:"invoice_number" validate:"required"`
	Type          model.TransactionType  `json:"type" validate:"required,oneof=SALE PURCHASE"`
	Date          string                 `json:"date"`
	CustomerID    *uuid.UUID             `json:"customer_id"`
	CustomerName  string                 `json:"customer_name"` // pembeli tanpa data master (walk-in)
	SupplierID    *uuid.UUID             `json:"supplier_id"`
	Subtotal      float64                `json:"subtotal" validate:"gte=0"`
	Discount      float64                `json:"discount" validate:"gte=0"`
	Tax           float64                `json:"tax" validate:"gte=0"`
	Total         float64                `json:"total" validate:"gte=0"`
	PaymentMethod string                 `json:"payment_method"`
	PaymentStatus model.PaymentStatus    `json:"payment_status" validate:"required,oneof=PAID UNPAID INSTALLMENT"`
	PaidAmount    float64                `json:"paid_amount" validate:"gte=0"`
	Notes         string                 `json:"notes"`
	Items         []TransactionItemInput `json:"items" validate:"required,min=1,dive"`
}

type PaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

type LedgerService interface {
	CreateTransaction(req *CreateTransactionRequest) (*model.Transaction, error)
	GetTransaction(id uuid.UUID) (*model.Transaction, error)
	ListTransactions(filter repository.TransactionFilter) ([]model.Transaction, error)
	DeleteTransaction(id uuid.UUID) error
	ApplyTransactionPayment(id uuid.UUID, req *PaymentRequest) (*model.Payment, error)
	ListTransactionPayments(id uuid.UUID) ([]model.Payment, error)
}

type ledgerService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	receivableRepo  repository.ReceivableRepository
	payableRepo     repository.PayableRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewLedgerService(
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	receivableRepo repository.ReceivableRepository,
	payableRepo repository.PayableRepository,
	db *gorm.DB,
	hub *ws.Hub,
) LedgerService {
	return &ledgerService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		receivableRepo:  receivableRepo,
		payableRepo:     payableRepo,
		db:              db,
		wsHub:           hub,
	}
}

// CreateTransaction runs the whole ledger write as one atomic unit: header,
// line items, one stock mutation per item, and the receivable/payable opened
// for an under-paid transaction. Any failure rolls back everything.
func (s *ledgerService) CreateTransaction(req *CreateTransactionRequest) (*model.Transaction, error) {
	// 1. Validasi input dasar
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	// 2. Hitung ulang total dari line items; nilai kiriman caller dicek,
	// bukan dipercaya begitu saja
	var subtotal float64
	for i := range req.Items {
		item := &req.Items[i]
		lineTotal := float64(item.Quantity)*item.Price - item.Discount
		if item.Subtotal == 0 {
			item.Subtotal = lineTotal
		} else if math.Abs(item.Subtotal-lineTotal) > amountTolerance {
			return nil, ErrTotalsMismatch
		}
		subtotal += item.Subtotal
	}

	total := subtotal - req.Discount + req.Tax
	if req.Subtotal != 0 && math.Abs(req.Subtotal-subtotal) > amountTolerance {
		return nil, ErrTotalsMismatch
	}
	if req.Total != 0 && math.Abs(req.Total-total) > amountTolerance {
		return nil, ErrTotalsMismatch
	}
	remaining := total - req.PaidAmount
	if remaining < -amountTolerance {
		return nil, ErrTotalsMismatch
	}
	if req.PaymentStatus == model.PaymentPaid && remaining > amountTolerance {
		return nil, ErrTotalsMismatch
	}
	if math.Abs(remaining) <= amountTolerance {
		remaining = 0
	}

	// 3. Cek duplikasi nomor invoice
	if existing, _ := s.transactionRepo.FindByInvoiceNumber(req.InvoiceNumber); existing != nil && existing.ID != uuid.Nil {
		return nil, ErrDuplicateInvoice
	}

	notes := req.Notes
	if req.CustomerID == nil && req.CustomerName != "" {
		if notes != "" {
			notes = fmt.Sprintf("Customer: %s | %s", req.CustomerName, notes)
		} else {
			notes = fmt.Sprintf("Customer: %s", req.CustomerName)
		}
	}

	txn := &model.Transaction{
		InvoiceNumber:   req.InvoiceNumber,
		Type:            req.Type,
		Date:            dateutil.ParseOr(req.Date, time.Now()),
		CustomerID:      req.CustomerID,
		SupplierID:      req.SupplierID,
		Subtotal:        subtotal,
		Discount:        req.Discount,
		Tax:             req.Tax,
		Total:           total,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentStatus,
		PaidAmount:      req.PaidAmount,
		RemainingAmount: remaining,
		Status:          model.TxStatusCompleted,
		Notes:           notes,
	}

	// 4. Satu unit kerja atomik untuk header + items + stok + hutang/piutang
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customerName, supplierName string

		// Referensi pihak harus valid sebelum ada yang ditulis
		if req.CustomerID != nil {
			var customer model.Customer
			if err := tx.First(&customer, "id = ?", *req.CustomerID).Error; err != nil {
				return ErrNotFound
			}
			customerName = customer.Name
		}
		if req.SupplierID != nil {
			var supplier model.Supplier
			if err := tx.First(&supplier, "id = ?", *req.SupplierID).Error; err != nil {
				return ErrNotFound
			}
			supplierName = supplier.Name
		}

		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		for i := range req.Items {
			in := &req.Items[i]
			item := model.TransactionItem{
				TransactionID: txn.ID,
				ProductID:     in.ProductID,
				Quantity:      in.Quantity,
				Price:         in.Price,
				Discount:      in.Discount,
				Subtotal:      in.Subtotal,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			// Satu mutasi stok per item, dalam scope atomik yang sama
			var err error
			if req.Type == model.TxSale {
				err = s.productRepo.DeductStock(tx, in.ProductID, in.Quantity)
			} else {
				err = s.productRepo.AddStock(tx, in.ProductID, in.Quantity)
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
		}

		// 5. Buka piutang/hutang kalau transaksi belum lunas. Nama pihak
		// dibekukan (denormalisasi) di sini.
		if txn.PaymentStatus != model.PaymentPaid && txn.RemainingAmount > 0 {
			description := fmt.Sprintf("Invoice %s", txn.InvoiceNumber)
			if req.Type == model.TxSale && req.CustomerID != nil {
				receivable := model.Receivable{
					CustomerID:    *req.CustomerID,
					CustomerName:  customerName,
					TransactionID: &txn.ID,
					Amount:        txn.Total,
					PaidAmount:    txn.PaidAmount,
					Remaining:     txn.RemainingAmount,
					Status:        txn.PaymentStatus,
					Description:   description,
				}
				if err := tx.Create(&receivable).Error; err != nil {
					return err
				}
			} else if req.Type == model.TxPurchase && req.SupplierID != nil {
				payable := model.Payable{
					SupplierID:    *req.SupplierID,
					SupplierName:  supplierName,
					TransactionID: &txn.ID,
					Amount:        txn.Total,
					PaidAmount:    txn.PaidAmount,
					Remaining:     txn.RemainingAmount,
					Status:        txn.PaymentStatus,
					Description:   description,
				}
				if err := tx.Create(&payable).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	complete, err := s.transactionRepo.FindByID(txn.ID)
	if err != nil {
		return nil, err
	}

	s.broadcastTransaction(complete)

	return complete, nil
}

func (s *ledgerService) broadcastTransaction(txn *model.Transaction) {
	if s.wsHub == nil {
		return
	}
	go func() {
		items := make([]map[string]interface{}, 0, len(txn.Items))
		for _, item := range txn.Items {
			entry := map[string]interface{}{
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
			}
			if item.Product != nil {
				entry["name"] = item.Product.Name
				entry["new_stock"] = item.Product.Stock
				if txn.Type == model.TxSale && item.Product.Stock <= item.Product.MinStock {
					s.wsHub.BroadcastEvent("low_stock", map[string]interface{}{
						"product_id": item.ProductID,
						"name":       item.Product.Name,
						"stock":      item.Product.Stock,
						"min_stock":  item.Product.MinStock,
					})
				}
			}
			items = append(items, entry)
		}
		s.wsHub.BroadcastEvent("transaction_created", map[string]interface{}{
			"id":             txn.ID,
			"invoice_number": txn.InvoiceNumber,
			"type":           txn.Type,
			"total":          txn.Total,
			"items":          items,
		})
	}()
}

func (s *ledgerService) GetTransaction(id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.transactionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return txn, err
}

func (s *ledgerService) ListTransactions(filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.FindAll(filter)
}

func (s *ledgerService) DeleteTransaction(id uuid.UUID) error {
	err := s.transactionRepo.DeleteCascade(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ApplyTransactionPayment appends an installment to the transaction and
// mirrors the new balance onto the linked receivable/payable, keeping the two
// records numerically identical. A missing debt record is not an error.
func (s *ledgerService) ApplyTransactionPayment(id uuid.UUID, req *PaymentRequest) (*model.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var payment *model.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txn model.Transaction
		if err := tx.First(&txn, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if req.Amount > txn.RemainingAmount+amountTolerance {
			return ErrAmountExceedsRemaining
		}

		// Guarded balance update: the predicate re-checks remaining so two
		// concurrent payments cannot both drain the same balance. The CASE
		// branches see the pre-update row, so a payoff snaps paid_amount,
		// remaining, and status in the same write.
		res := tx.Model(&model.Transaction{}).
			Where("id = ? AND remaining_amount >= ?", id, req.Amount).
			Updates(map[string]interface{}{
				"paid_amount": gorm.Expr(
					"CASE WHEN remaining_amount - ? <= ? THEN total ELSE paid_amount + ? END",
					req.Amount, amountTolerance, req.Amount),
				"remaining_amount": gorm.Expr(
					"CASE WHEN remaining_amount - ? <= ? THEN 0 ELSE remaining_amount - ? END",
					req.Amount, amountTolerance, req.Amount),
				"payment_status": gorm.Expr(
					"CASE WHEN remaining_amount - ? <= ? THEN ? ELSE ? END",
					req.Amount, amountTolerance, string(model.PaymentPaid), string(model.PaymentInstallment)),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAmountExceedsRemaining
		}

		if err := tx.First(&txn, "id = ?", id).Error; err != nil {
			return err
		}
		newStatus := txn.PaymentStatus
		newRemaining := txn.RemainingAmount

		payment = &model.Payment{
			TransactionID: id,
			Amount:        req.Amount,
			PaymentDate:   dateutil.ParseOr(req.PaymentDate, time.Now()),
			PaymentMethod: req.PaymentMethod,
			Notes:         req.Notes,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		// Mirror ke piutang/hutang yang terhubung lewat transaction_id
		switch {
		case txn.Type == model.TxSale && txn.CustomerID != nil:
			receivable, err := s.receivableRepo.FindByTransactionID(tx, id)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			return tx.Model(receivable).Updates(map[string]interface{}{
				"paid_amount": txn.PaidAmount,
				"remaining":   newRemaining,
				"status":      newStatus,
			}).Error
		case txn.Type == model.TxPurchase && txn.SupplierID != nil:
			payable, err := s.payableRepo.FindByTransactionID(tx, id)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			return tx.Model(payable).Updates(map[string]interface{}{
				"paid_amount": txn.PaidAmount,
				"remaining":   newRemaining,
				"status":      newStatus,
			}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.wsHub != nil && payment != nil {
		go s.wsHub.BroadcastEvent("payment_applied", map[string]interface{}{
			"transaction_id": id,
			"amount":         payment.Amount,
		})
	}

	return payment, nil
}

func (s *ledgerService) ListTransactionPayments(id uuid.UUID) ([]model.Payment, error) {
	if _, err := s.transactionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.transactionRepo.ListPayments(id)
}
