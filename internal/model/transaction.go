package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxSale     TransactionType = "SALE"
	TxPurchase TransactionType = "PURCHASE"
)

type PaymentStatus string

const (
	PaymentPaid        PaymentStatus = "PAID"
	PaymentUnpaid      PaymentStatus = "UNPAID"
	PaymentInstallment PaymentStatus = "INSTALLMENT"
)

const TxStatusCompleted = "COMPLETED"

type Transaction struct {
	BaseModel
	InvoiceNumber string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number" validate:"required"`
	Type          TransactionType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=SALE PURCHASE"`
	Date          time.Time       `json:"date"`

	CustomerID *uuid.UUID `gorm:"type:uuid" json:"customer_id,omitempty"`
	Customer   *Customer  `json:"customer,omitempty" validate:"-"`
	SupplierID *uuid.UUID `gorm:"type:uuid" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `json:"supplier,omitempty" validate:"-"`

	Subtotal float64 `gorm:"not null" json:"subtotal"`
	Discount float64 `gorm:"default:0" json:"discount" validate:"gte=0"`
	Tax      float64 `gorm:"default:0" json:"tax" validate:"gte=0"`
	Total    float64 `gorm:"not null" json:"total"`

	PaymentMethod   string        `gorm:"type:varchar(20)" json:"payment_method"` // CASH, TRANSFER, ...
	PaymentStatus   PaymentStatus `gorm:"type:varchar(15);not null" json:"payment_status" validate:"required,oneof=PAID UNPAID INSTALLMENT"`
	PaidAmount      float64       `gorm:"default:0" json:"paid_amount" validate:"gte=0"`
	RemainingAmount float64       `gorm:"default:0" json:"remaining_amount"`

	Status string `gorm:"type:varchar(15);default:COMPLETED" json:"status"`
	Notes  string `json:"notes"`

	// Lifecycle milik transaksi: ikut terhapus bersama header
	Items    []TransactionItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`
	Payments []Payment         `gorm:"constraint:OnDelete:CASCADE" json:"payments,omitempty" validate:"-"`
}

// TransactionItem is immutable after creation. Each item accounts for exactly
// one stock mutation on its product within the same database transaction.
type TransactionItem struct {
	BaseModel
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product       *Product  `json:"product,omitempty" validate:"-"`

	Quantity int     `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price    float64 `gorm:"not null" json:"price" validate:"gte=0"`
	Discount float64 `gorm:"default:0" json:"discount" validate:"gte=0"`
	Subtotal float64 `gorm:"not null" json:"subtotal"` // quantity * price - discount
}

// Payment is an append-only installment record against a transaction.
type Payment struct {
	BaseModel
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null" json:"transaction_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `gorm:"type:varchar(20)" json:"payment_method"`
	Notes         string    `json:"notes"`
}
