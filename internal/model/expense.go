package model

import "time"

type Expense struct {
	BaseModel
	Date        time.Time `gorm:"not null" json:"date"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Amount      float64   `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Description string    `json:"description"`
}
