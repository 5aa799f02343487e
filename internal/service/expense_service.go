package service

import (
	"errors"
	"time"

	"go-bengkel-api/internal/model"
	"go-bengkel-api/internal/repository"
	"go-bengkel-api/pkg/dateutil"
	"go-bengkel-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRequest struct {
	Date        string  `json:"date"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type ExpenseService interface {
	CreateExpense(req *ExpenseRequest) (*model.Expense, error)
	ListExpenses(startDate, endDate *time.Time, category string) ([]model.Expense, error)
	GetExpense(id uuid.UUID) (*model.Expense, error)
	UpdateExpense(id uuid.UUID, req *ExpenseRequest) (*model.Expense, error)
	DeleteExpense(id uuid.UUID) error
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(req *ExpenseRequest) (*model.Expense, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	expense := &model.Expense{
		Date:        dateutil.ParseOr(req.Date, time.Now()),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(startDate, endDate *time.Time, category string) ([]model.Expense, error) {
	return s.expenseRepo.FindAll(startDate, endDate, category)
}

func (s *expenseService) GetExpense(id uuid.UUID) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return expense, err
}

func (s *expenseService) UpdateExpense(id uuid.UUID, req *ExpenseRequest) (*model.Expense, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	expense.Date = dateutil.ParseOr(req.Date, expense.Date)
	expense.Category = req.Category
	expense.Amount = req.Amount
	expense.Description = req.Description
	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.expenseRepo.Delete(id)
}
