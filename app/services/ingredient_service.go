package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"DoceGestor/app/costing"
	"DoceGestor/app/models"
)

// IngredientService handles the ingredient ledger: purchase lots,
// current stock and the movement history.
type IngredientService struct {
	*BaseService
}

// NewIngredientService creates a new ingredient service
func NewIngredientService() *IngredientService {
	return &IngredientService{
		BaseService: NewBaseService(),
	}
}

// GetAllIngredients retrieves all ingredients ordered by name
func (s *IngredientService) GetAllIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.db.Order("name ASC").Find(&ingredients).Error
	return ingredients, err
}

// GetIngredient retrieves a single ingredient by ID
func (s *IngredientService) GetIngredient(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.First(&ingredient, id).Error
	return &ingredient, err
}

// GetIngredientByName looks an ingredient up by name,
// case-insensitively. The folding happens in Go because SQL LOWER only
// folds ASCII on sqlite, which misses accented names like Açúcar.
func (s *IngredientService) GetIngredientByName(name string) (*models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	for i := range ingredients {
		if strings.EqualFold(ingredients[i].Name, name) {
			return &ingredients[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// CreateIngredient creates a new ingredient and, when a lot purchase is
// recorded, its first purchase lot.
func (s *IngredientService) CreateIngredient(ingredient *models.Ingredient) error {
	if ingredient.Name == "" {
		return NewValidationError("nome do insumo é obrigatório")
	}
	if !costing.IsValidPurchaseUnit(ingredient.PurchaseUnit) {
		return NewValidationError("unidade de compra inválida: %s", ingredient.PurchaseUnit)
	}

	existing, err := s.GetIngredientByName(ingredient.Name)
	if err == nil {
		return NewValidationError("insumo %q já cadastrado", existing.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Create(ingredient).Error; err != nil {
			return err
		}

		if ingredient.PurchasePrice > 0 && ingredient.PurchaseQty > 0 {
			lot := models.IngredientLot{
				IngredientID: ingredient.ID,
				PricePerUnit: ingredient.PurchasePrice / ingredient.PurchaseQty,
				QtyAvailable: ingredient.PurchaseQty,
				EntryDate:    time.Now(),
			}
			if err := tx.Create(&lot).Error; err != nil {
				return err
			}
		}

		if ingredient.Stock > 0 {
			return CreateIngredientMovement(tx, ingredient.ID, "adjustment",
				ingredient.Stock, 0, ingredient.Stock, "Estoque inicial")
		}

		return nil
	})
}

// UpdateIngredient updates an existing ingredient, recording a movement
// when the stock was edited and a new lot when a purchase was recorded.
func (s *IngredientService) UpdateIngredient(ingredient *models.Ingredient, newLot bool) error {
	if !costing.IsValidPurchaseUnit(ingredient.PurchaseUnit) {
		return NewValidationError("unidade de compra inválida: %s", ingredient.PurchaseUnit)
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		var current models.Ingredient
		if err := tx.First(&current, ingredient.ID).Error; err != nil {
			return err
		}

		if current.Stock != ingredient.Stock {
			if err := CreateIngredientMovement(tx, ingredient.ID, "adjustment",
				ingredient.Stock-current.Stock, current.Stock, ingredient.Stock,
				"Ajuste manual"); err != nil {
				return err
			}
		}

		if newLot && ingredient.PurchasePrice > 0 && ingredient.PurchaseQty > 0 {
			lot := models.IngredientLot{
				IngredientID: ingredient.ID,
				PricePerUnit: ingredient.PurchasePrice / ingredient.PurchaseQty,
				QtyAvailable: ingredient.PurchaseQty,
				EntryDate:    time.Now(),
			}
			if err := tx.Create(&lot).Error; err != nil {
				return err
			}
		}

		return tx.Save(ingredient).Error
	})
}

// DeleteIngredient deletes an ingredient that no recipe references
func (s *IngredientService) DeleteIngredient(id uint) error {
	var refs int64
	if err := s.db.Model(&models.RecipeIngredient{}).
		Where("ingredient_id = ?", id).
		Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return NewValidationError("insumo em uso por %d receita(s)", refs)
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.IngredientLot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ingredient{}, id).Error
	})
}

// RestockIngredient increments stock manually (a purchase arriving)
func (s *IngredientService) RestockIngredient(id uint, quantity float64, reason string) error {
	if quantity <= 0 {
		return NewValidationError("quantidade de reposição deve ser positiva")
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient
		if err := tx.First(&ingredient, id).Error; err != nil {
			return err
		}

		previous := ingredient.Stock
		ingredient.Stock += quantity

		if err := tx.Save(&ingredient).Error; err != nil {
			return err
		}

		if reason == "" {
			reason = "Reposição de estoque"
		}
		return CreateIngredientMovement(tx, id, "purchase", quantity, previous, ingredient.Stock, reason)
	})
}

// GetIngredientMovements retrieves the movement history of an ingredient
func (s *IngredientService) GetIngredientMovements(ingredientID uint) ([]models.IngredientMovement, error) {
	var movements []models.IngredientMovement
	err := s.db.Where("ingredient_id = ?", ingredientID).
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}

// GetIngredientLots retrieves the purchase lots of an ingredient
func (s *IngredientService) GetIngredientLots(ingredientID uint) ([]models.IngredientLot, error) {
	var lots []models.IngredientLot
	err := s.db.Where("ingredient_id = ?", ingredientID).
		Order("entry_date DESC").
		Find(&lots).Error
	return lots, err
}

// String formatting helper kept close to the ledger: a purchase unit
// label with its quantity, e.g. "250 g".
func FormatQuantity(qty float64, unit string) string {
	return fmt.Sprintf("%g %s", qty, unit)
}
