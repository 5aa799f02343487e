package model

import (
	"time"

	"github.com/google/uuid"
)

// Receivable adalah piutang: tagihan ke customer.
// TransactionID links back to the originating sale when the receivable was
// opened by one; the customer name is frozen at creation time so the debt
// history survives renames.
type Receivable struct {
	BaseModel
	CustomerID   uuid.UUID `gorm:"type:uuid;not null" json:"customer_id" validate:"uuid_required"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`

	TransactionID *uuid.UUID `gorm:"type:uuid;index" json:"transaction_id,omitempty"`

	Amount     float64    `gorm:"not null" json:"amount" validate:"required,gt=0"`
	PaidAmount float64    `gorm:"default:0" json:"paid_amount" validate:"gte=0"`
	Remaining  float64    `gorm:"not null" json:"remaining"` // amount - paid_amount, always
	DueDate    *time.Time `json:"due_date,omitempty"`

	Status      PaymentStatus `gorm:"type:varchar(15);not null;default:UNPAID" json:"status" validate:"omitempty,oneof=PAID UNPAID INSTALLMENT"`
	Description string        `json:"description"`

	Payments []ReceivablePayment `gorm:"constraint:OnDelete:CASCADE" json:"payments,omitempty" validate:"-"`
}

// Payable adalah hutang: kewajiban ke supplier.
type Payable struct {
	BaseModel
	SupplierID   uuid.UUID `gorm:"type:uuid;not null" json:"supplier_id" validate:"uuid_required"`
	SupplierName string    `gorm:"type:varchar(255);not null" json:"supplier_name"`

	TransactionID *uuid.UUID `gorm:"type:uuid;index" json:"transaction_id,omitempty"`

	Amount     float64    `gorm:"not null" json:"amount" validate:"required,gt=0"`
	PaidAmount float64    `gorm:"default:0" json:"paid_amount" validate:"gte=0"`
	Remaining  float64    `gorm:"not null" json:"remaining"`
	DueDate    *time.Time `json:"due_date,omitempty"`

	Status      PaymentStatus `gorm:"type:varchar(15);not null;default:UNPAID" json:"status" validate:"omitempty,oneof=PAID UNPAID INSTALLMENT"`
	Description string        `json:"description"`

	Payments []PayablePayment `gorm:"constraint:OnDelete:CASCADE" json:"payments,omitempty" validate:"-"`
}

type ReceivablePayment struct {
	BaseModel
	ReceivableID  uuid.UUID `gorm:"type:uuid;index;not null" json:"receivable_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(20)" json:"payment_method"`
	Notes         string    `json:"notes"`
	Date          time.Time `json:"date"`
}

type PayablePayment struct {
	BaseModel
	PayableID     uuid.UUID `gorm:"type:uuid;index;not null" json:"payable_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(20)" json:"payment_method"`
	Notes         string    `json:"notes"`
	Date          time.Time `json:"date"`
}
