package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Code        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null" json:"category_id" validate:"uuid_required"`
	Category    *Category `json:"category,omitempty" validate:"-"`

	Stock         int     `gorm:"default:0" json:"stock" validate:"gte=0"`
	MinStock      int     `gorm:"default:5" json:"min_stock"`
	PurchasePrice float64 `gorm:"not null" json:"purchase_price" validate:"gte=0"`
	SellingPrice  float64 `gorm:"not null" json:"selling_price" validate:"gte=0"`
}
