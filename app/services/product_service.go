package services

import (
	"gorm.io/gorm"

	"DoceGestor/app/config"
	"DoceGestor/app/costing"
	"DoceGestor/app/models"
)

// ProductService handles sellable products backed by recipes
type ProductService struct {
	*BaseService
	pricing config.PricingConfig
}

// NewProductService creates a new product service
func NewProductService(pricing config.PricingConfig) *ProductService {
	return &ProductService{
		BaseService: NewBaseService(),
		pricing:     pricing,
	}
}

// GetAllProducts gets all products, actives first
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("Recipe").
		Order("is_active DESC, name ASC").
		Find(&products).Error
	return products, err
}

// GetActiveProducts gets only active products
func (s *ProductService) GetActiveProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

// GetProduct gets a single product by ID
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Recipe").First(&product, id).Error
	return &product, err
}

// CreateProduct creates a product. When it is backed by a recipe the
// production cost is copied from the recipe's current total cost; the
// copy is not resynced on later recipe edits until the product is
// saved again.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Name == "" {
		return NewValidationError("nome do produto é obrigatório")
	}
	if product.ProfitMargin == 0 {
		product.ProfitMargin = s.pricing.DefaultMargin
	}
	if product.IsActive == nil {
		active := true
		product.IsActive = &active
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		if err := s.syncFromRecipe(tx, product); err != nil {
			return err
		}
		s.derivePrices(product, true)

		if err := tx.Create(product).Error; err != nil {
			return err
		}

		if product.Stock != 0 {
			return CreateProductMovement(tx, product.ID, "adjustment",
				product.Stock, 0, product.Stock, "Estoque inicial")
		}
		return nil
	})
}

// UpdateProduct updates a product, re-copying the recipe cost and
// keeping manual prices unless cost or margin moved.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.WithTransaction(func(tx *gorm.DB) error {
		var current models.Product
		if err := tx.First(&current, product.ID).Error; err != nil {
			return err
		}

		if err := s.syncFromRecipe(tx, product); err != nil {
			return err
		}
		if product.IsActive == nil {
			product.IsActive = current.IsActive
		}

		costChanged := product.ProductionCost != current.ProductionCost ||
			product.AdditionalCosts != current.AdditionalCosts ||
			product.ProfitMargin != current.ProfitMargin
		s.derivePrices(product, costChanged)

		if current.Stock != product.Stock {
			if err := CreateProductMovement(tx, product.ID, "adjustment",
				product.Stock-current.Stock, current.Stock, product.Stock,
				"Ajuste manual"); err != nil {
				return err
			}
		}

		return tx.Save(product).Error
	})
}

// DeleteProduct soft deletes a product
func (s *ProductService) DeleteProduct(id uint) error {
	return s.db.Delete(&models.Product{}, id).Error
}

// GetLowStockProducts gets active products at or below their minimum
func (s *ProductService) GetLowStockProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("is_active = ? AND stock <= min_stock", true).
		Order("stock ASC").
		Find(&products).Error
	return products, err
}

func (s *ProductService) syncFromRecipe(tx *gorm.DB, product *models.Product) error {
	if product.RecipeID == nil {
		return nil
	}
	var recipe models.Recipe
	if err := tx.First(&recipe, *product.RecipeID).Error; err != nil {
		return NewValidationError("receita %d não encontrada", *product.RecipeID)
	}
	product.ProductionCost = recipe.TotalCost
	return nil
}

func (s *ProductService) derivePrices(product *models.Product, costChanged bool) {
	if !costChanged && product.SalePrice > 0 {
		return
	}
	prices := costing.ComputePrices(product.ProductionCost+product.AdditionalCosts,
		product.ProfitMargin, s.pricing.ResaleDiscount)
	product.SalePrice = prices.Sale
	product.ResalePrice = prices.Resale
}
