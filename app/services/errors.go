package services

import (
	"fmt"
	"strings"
)

// ValidationError rejects bad input before any side effect happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StockShortage describes one ingredient that cannot cover a production
// run.
type StockShortage struct {
	IngredientName string  `json:"ingredient_name"`
	Available      float64 `json:"available"`
	Required       float64 `json:"required"`
	Unit           string  `json:"unit"`
}

// InsufficientStockError aggregates every shortage found while
// validating a production run. It is raised before any stock is
// touched, so the caller can restock and retry.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	lines := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		lines = append(lines, fmt.Sprintf("%s (disponível: %g %s, necessário: %g %s)",
			s.IngredientName, s.Available, s.Unit, s.Required, s.Unit))
	}
	return "estoque insuficiente para:\n" + strings.Join(lines, "\n")
}
