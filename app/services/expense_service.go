package services

import (
	"time"

	"DoceGestor/app/models"
)

// ExpenseService handles gastos
type ExpenseService struct {
	*BaseService
}

// NewExpenseService creates a new expense service
func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		BaseService: NewBaseService(),
	}
}

// GetAllExpenses retrieves all expenses ordered by due date
func (s *ExpenseService) GetAllExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Order("due_date ASC").Find(&expenses).Error
	return expenses, err
}

// CreateExpense creates an expense
func (s *ExpenseService) CreateExpense(expense *models.Expense) error {
	if expense.Description == "" {
		return NewValidationError("descrição do gasto é obrigatória")
	}
	if expense.Amount <= 0 {
		return NewValidationError("valor do gasto deve ser positivo")
	}
	return s.db.Create(expense).Error
}

// UpdateExpense updates an expense
func (s *ExpenseService) UpdateExpense(expense *models.Expense) error {
	return s.db.Save(expense).Error
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(id uint) error {
	return s.db.Delete(&models.Expense{}, id).Error
}

// MarkPaid flips an expense to pago
func (s *ExpenseService) MarkPaid(id uint) error {
	return s.db.Model(&models.Expense{}).
		Where("id = ?", id).
		Update("status", "pago").Error
}

// PeriodTotal sums expenses with a due date inside [from, to)
func (s *ExpenseService) PeriodTotal(from, to time.Time) (float64, error) {
	var total float64
	err := s.db.Model(&models.Expense{}).
		Where("due_date >= ? AND due_date < ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	return total, err
}
