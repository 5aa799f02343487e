package model

type CustomerType string

const (
	CustomerGeneral CustomerType = "UMUM"
	CustomerCompany CustomerType = "PERUSAHAAN"
)

type Customer struct {
	BaseModel
	Code        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Type        CustomerType `gorm:"type:varchar(20);default:UMUM" json:"type" validate:"omitempty,oneof=UMUM PERUSAHAAN"`
	CompanyName string       `gorm:"type:varchar(255)" json:"company_name"`
	Phone       string       `gorm:"type:varchar(30)" json:"phone"`
	Email       string       `gorm:"type:varchar(255)" json:"email"`
	Address     string       `json:"address"`

	Transactions []Transaction `json:"transactions,omitempty"`
}

type Supplier struct {
	BaseModel
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	CompanyName string `gorm:"type:varchar(255)" json:"company_name"`
	Phone       string `gorm:"type:varchar(30)" json:"phone"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	Address     string `json:"address"`

	Transactions []Transaction `json:"transactions,omitempty"`
}
