package repository

import (
	"time"

	"go-bengkel-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll(startDate, endDate *time.Time, category string) ([]model.Expense, error)
	FindByID(id uuid.UUID) (*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(id uuid.UUID) error
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll(startDate, endDate *time.Time, category string) ([]model.Expense, error) {
	var expenses []model.Expense
	q := r.db.Order("date DESC")
	if startDate != nil && endDate != nil {
		q = q.Where("date >= ? AND date <= ?", *startDate, *endDate)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.First(&expense, "id = ?", id).Error
	return &expense, err
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Expense{}, "id = ?", id).Error
}
