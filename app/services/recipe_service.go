package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"DoceGestor/app/config"
	"DoceGestor/app/costing"
	"DoceGestor/app/models"
)

// RecipeService handles recipe costing and production. Costs are
// recomputed on every edit; prices only when the cost or margin moved,
// so manual price overrides survive unrelated edits.
type RecipeService struct {
	*BaseService
	pricing config.PricingConfig
	events  Publisher
}

// NewRecipeService creates a new recipe service
func NewRecipeService(pricing config.PricingConfig, events Publisher) *RecipeService {
	return &RecipeService{
		BaseService: NewBaseService(),
		pricing:     pricing,
		events:      events,
	}
}

// GetAllRecipes retrieves all recipes with their costed lines
func (s *RecipeService) GetAllRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Preload("Ingredients.Ingredient").
		Preload("SubRecipe").
		Order("name ASC").
		Find(&recipes).Error
	return recipes, err
}

// GetRecipe retrieves a single recipe by ID
func (s *RecipeService) GetRecipe(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Preload("Ingredients.Ingredient").
		Preload("SubRecipe").
		First(&recipe, id).Error
	return &recipe, err
}

// CreateRecipe creates a recipe, costing its lines and deriving prices
func (s *RecipeService) CreateRecipe(recipe *models.Recipe) error {
	if recipe.Name == "" {
		return NewValidationError("nome da receita é obrigatório")
	}
	if recipe.ProfitMargin == 0 {
		recipe.ProfitMargin = s.pricing.DefaultMargin
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		lines := recipe.Ingredients
		recipe.Ingredients = nil

		if err := s.recalculate(tx, recipe, lines); err != nil {
			return err
		}
		prices := costing.ComputePrices(recipe.TotalCost, recipe.ProfitMargin, s.pricing.ResaleDiscount)
		recipe.SalePrice = prices.Sale
		recipe.ResalePrice = prices.Resale

		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return s.replaceLines(tx, recipe.ID, lines)
	})
}

// UpdateRecipe updates a recipe. The ingredient list is replaced
// wholesale (no line-level diffing). Prices are re-derived only when
// the recomputed total cost or the margin changed; otherwise the
// submitted sale/resale prices are kept as manual overrides.
func (s *RecipeService) UpdateRecipe(recipe *models.Recipe) error {
	return s.WithTransaction(func(tx *gorm.DB) error {
		var current models.Recipe
		if err := tx.First(&current, recipe.ID).Error; err != nil {
			return err
		}

		lines := recipe.Ingredients
		recipe.Ingredients = nil

		if err := s.recalculate(tx, recipe, lines); err != nil {
			return err
		}

		costChanged := recipe.TotalCost != current.TotalCost ||
			recipe.AdditionalCosts != current.AdditionalCosts ||
			recipe.ProfitMargin != current.ProfitMargin
		if costChanged {
			prices := costing.ComputePrices(recipe.TotalCost, recipe.ProfitMargin, s.pricing.ResaleDiscount)
			recipe.SalePrice = prices.Sale
			recipe.ResalePrice = prices.Resale
		}

		// Finished stock is production-driven, never form-driven.
		recipe.FinishedStock = current.FinishedStock

		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		return s.replaceLines(tx, recipe.ID, lines)
	})
}

// DeleteRecipe removes a recipe and its lines
func (s *RecipeService) DeleteRecipe(id uint) error {
	var backing int64
	if err := s.db.Model(&models.Product{}).Where("recipe_id = ?", id).Count(&backing).Error; err != nil {
		return err
	}
	if backing > 0 {
		return NewValidationError("receita vinculada a %d produto(s)", backing)
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// recalculate costs every line against the current ingredient ledger
// and rolls the total up, including the prorated sub-recipe cost.
func (s *RecipeService) recalculate(tx *gorm.DB, recipe *models.Recipe, lines []models.RecipeIngredient) error {
	costLines := make([]costing.Line, 0, len(lines))

	for i := range lines {
		var ingredient models.Ingredient
		err := tx.First(&ingredient, lines[i].IngredientID).Error
		if err != nil {
			// A vanished ingredient degrades the line to zero cost
			// instead of failing the whole recipe.
			lines[i].Cost = 0
			costLines = append(costLines, costing.Line{Missing: true})
			continue
		}

		line := costing.Line{
			PurchaseUnit: ingredient.PurchaseUnit,
			UnitCost:     ingredient.UnitCost(),
			Quantity:     lines[i].Quantity,
			Unit:         lines[i].Unit,
		}
		lines[i].Cost = line.Cost()
		costLines = append(costLines, line)
	}

	var sub *costing.SubRecipe
	if recipe.SubRecipeID != nil {
		var subRecipe models.Recipe
		if err := tx.First(&subRecipe, *recipe.SubRecipeID).Error; err != nil {
			return fmt.Errorf("sub-receita não encontrada: %w", err)
		}
		sub = &costing.SubRecipe{
			TotalCost: subRecipe.TotalCost,
			Yield:     subRecipe.Yield,
			Portions:  recipe.SubPortions,
		}
	}

	recipe.TotalCost = costing.TotalCost(costLines, recipe.AdditionalCosts, sub)
	return nil
}

// replaceLines deletes and recreates all lines of a recipe
func (s *RecipeService) replaceLines(tx *gorm.DB, recipeID uint, lines []models.RecipeIngredient) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	for i := range lines {
		lines[i].ID = 0
		lines[i].RecipeID = recipeID
		if err := tx.Create(&lines[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Produce runs batches of a recipe: validates stock for every
// ingredient up front, then decrements ingredient stock, increments the
// recipe's finished stock and every backing product's stock, and logs
// one production event. The whole effect sequence runs in a single
// transaction so a store failure cannot leave stock half-updated.
func (s *RecipeService) Produce(recipeID uint, batches int) (*models.ProductionEvent, error) {
	if batches <= 0 {
		return nil, NewValidationError("quantidade de lotes deve ser maior que zero")
	}

	var (
		event    *models.ProductionEvent
		lowStock []map[string]interface{}
	)
	err := s.WithTransaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Preload("Ingredients.Ingredient").First(&recipe, recipeID).Error; err != nil {
			return fmt.Errorf("receita não encontrada: %w", err)
		}

		// Requirements are aggregated per ingredient so a recipe that
		// lists the same insumo on more than one line consumes the sum
		// of its lines, not just the last one.
		type requirement struct {
			ingredient *models.Ingredient
			total      float64
		}
		var order []uint
		needs := make(map[uint]*requirement)
		for _, line := range recipe.Ingredients {
			if line.Ingredient == nil {
				continue
			}
			n, ok := needs[line.IngredientID]
			if !ok {
				n = &requirement{ingredient: line.Ingredient}
				needs[line.IngredientID] = n
				order = append(order, line.IngredientID)
			}
			n.total += line.Quantity * float64(batches)
		}

		// Validate everything before touching anything, collecting all
		// shortages into one error.
		var shortages []StockShortage
		for _, id := range order {
			n := needs[id]
			if n.ingredient.Stock < n.total {
				shortages = append(shortages, StockShortage{
					IngredientName: n.ingredient.Name,
					Available:      n.ingredient.Stock,
					Required:       n.total,
					Unit:           n.ingredient.PurchaseUnit,
				})
			}
		}
		if len(shortages) > 0 {
			return &InsufficientStockError{Shortages: shortages}
		}

		reference := fmt.Sprintf("Produção de %d lote(s) - %s", batches, recipe.Name)

		for _, id := range order {
			n := needs[id]

			// The decrement is expressed against the stored value with
			// a stock guard so a concurrent Produce cannot overdraw the
			// ingredient between validation and the write.
			res := tx.Model(&models.Ingredient{}).
				Where("id = ? AND stock >= ?", id, n.total).
				Update("stock", gorm.Expr("stock - ?", n.total))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{Shortages: []StockShortage{{
					IngredientName: n.ingredient.Name,
					Available:      n.ingredient.Stock,
					Required:       n.total,
					Unit:           n.ingredient.PurchaseUnit,
				}}}
			}

			var updated models.Ingredient
			if err := tx.First(&updated, id).Error; err != nil {
				return err
			}
			if err := CreateIngredientMovement(tx, id, "production",
				-n.total, updated.Stock+n.total, updated.Stock, reference); err != nil {
				return err
			}

			if updated.Stock < n.total/float64(batches) {
				lowStock = append(lowStock, map[string]interface{}{
					"ingredient": n.ingredient.Name,
					"stock":      updated.Stock,
					"unit":       n.ingredient.PurchaseUnit,
				})
			}
		}

		if err := tx.Model(&models.Recipe{}).
			Where("id = ?", recipeID).
			Update("finished_stock", recipe.FinishedStock+batches).Error; err != nil {
			return err
		}

		var products []models.Product
		if err := tx.Where("recipe_id = ?", recipeID).Find(&products).Error; err != nil {
			return err
		}
		for _, product := range products {
			newQty := product.Stock + batches
			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("stock", newQty).Error; err != nil {
				return err
			}
			if err := CreateProductMovement(tx, product.ID, "production",
				batches, product.Stock, newQty, reference); err != nil {
				return err
			}
		}

		event = &models.ProductionEvent{
			RecipeID:   recipeID,
			Batches:    batches,
			ProducedOn: truncateToDay(time.Now()),
		}
		return tx.Create(event).Error
	})
	if err != nil {
		return nil, err
	}

	for _, payload := range lowStock {
		publish(s.events, EventLowStock, payload)
	}
	publish(s.events, EventProductionDone, event)
	return event, nil
}

// GetProductionHistory lists production events, most recent first
func (s *RecipeService) GetProductionHistory(recipeID uint) ([]models.ProductionEvent, error) {
	var events []models.ProductionEvent
	query := s.db.Order("created_at DESC")
	if recipeID != 0 {
		query = query.Where("recipe_id = ?", recipeID)
	}
	err := query.Find(&events).Error
	return events, err
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
