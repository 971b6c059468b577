package services

import (
	"errors"
	"testing"

	"DoceGestor/app/models"
)

func TestCreateProductCopiesRecipeCost(t *testing.T) {
	db := setupTestDB(t)
	recipeSvc := newTestRecipeService(db, nil)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	sugar := seedIngredient(t, db, "Açúcar", "g", 10.00, 1000, 2000)
	recipe := seedRecipe(t, recipeSvc, "Brigadeiro", []models.RecipeIngredient{
		{IngredientID: sugar.ID, Quantity: 500, Unit: "g"},
	})

	product := &models.Product{Name: "Brigadeiro cx 12", RecipeID: &recipe.ID, IsActive: boolp(true)}
	if err := svc.CreateProduct(product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	if !nearlyEqual(product.ProductionCost, recipe.TotalCost) {
		t.Errorf("production cost = %v, want recipe total %v", product.ProductionCost, recipe.TotalCost)
	}
	if !nearlyEqual(product.SalePrice, recipe.TotalCost*1.35) {
		t.Errorf("sale price = %v, want %v", product.SalePrice, recipe.TotalCost*1.35)
	}
	if !nearlyEqual(product.ResalePrice, product.SalePrice*0.85) {
		t.Errorf("resale price = %v, want %v", product.ResalePrice, product.SalePrice*0.85)
	}
}

func TestProductCostStaysStaleUntilResaved(t *testing.T) {
	db := setupTestDB(t)
	recipeSvc := newTestRecipeService(db, nil)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	sugar := seedIngredient(t, db, "Açúcar", "g", 10.00, 1000, 2000)
	recipe := seedRecipe(t, recipeSvc, "Brigadeiro", []models.RecipeIngredient{
		{IngredientID: sugar.ID, Quantity: 500, Unit: "g"},
	})

	product := &models.Product{Name: "Brigadeiro cx 12", RecipeID: &recipe.ID, IsActive: boolp(true)}
	if err := svc.CreateProduct(product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	originalCost := product.ProductionCost

	// The recipe gets more expensive; the product copy does not move.
	recipe.AdditionalCosts = 10.00
	recipe.Ingredients = []models.RecipeIngredient{
		{IngredientID: sugar.ID, Quantity: 500, Unit: "g"},
	}
	if err := recipeSvc.UpdateRecipe(recipe); err != nil {
		t.Fatalf("UpdateRecipe failed: %v", err)
	}

	stored, _ := svc.GetProduct(product.ID)
	if !nearlyEqual(stored.ProductionCost, originalCost) {
		t.Errorf("production cost = %v, want stale copy %v", stored.ProductionCost, originalCost)
	}

	// Saving the product re-copies the recipe cost.
	if err := svc.UpdateProduct(stored); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if !nearlyEqual(stored.ProductionCost, originalCost+10.00) {
		t.Errorf("production cost = %v, want resynced %v", stored.ProductionCost, originalCost+10.00)
	}
}

func TestUpdateProductKeepsManualPriceWhenCostUnchanged(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	product := &models.Product{Name: "Bolo no pote", ProductionCost: 0, SalePrice: 15.00, IsActive: boolp(true)}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	product.Description = "Pote 250ml"
	if err := svc.UpdateProduct(product); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if !nearlyEqual(product.SalePrice, 15.00) {
		t.Errorf("sale price = %v, want manual 15.00 kept", product.SalePrice)
	}
}

func TestCreateProductRequiresName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	err := svc.CreateProduct(&models.Product{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateProduct error = %v, want ValidationError", err)
	}
}

func TestCreateProductUnknownRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	missing := uint(999)
	err := svc.CreateProduct(&models.Product{Name: "Fantasma", RecipeID: &missing})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateProduct error = %v, want ValidationError", err)
	}
}

func TestGetLowStockProducts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	low := &models.Product{Name: "Pudim", SalePrice: 10, Stock: 1, MinStock: 3, IsActive: boolp(true)}
	ok := &models.Product{Name: "Torta", SalePrice: 30, Stock: 10, MinStock: 3, IsActive: boolp(true)}
	inactive := &models.Product{Name: "Cocada", SalePrice: 5, Stock: 0, MinStock: 3, IsActive: boolp(false)}
	for _, p := range []*models.Product{low, ok, inactive} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	got, err := svc.GetLowStockProducts()
	if err != nil {
		t.Fatalf("GetLowStockProducts failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Pudim" {
		t.Errorf("low stock products = %+v, want only Pudim", got)
	}
}

func TestCreateProductKeepsInactiveFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	product := &models.Product{Name: "Cocada", SalePrice: 5, IsActive: boolp(false)}
	if err := svc.CreateProduct(product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("failed to load product: %v", err)
	}
	if stored.IsActive == nil || *stored.IsActive {
		t.Fatal("product created as inactive was stored active")
	}

	// Omitting the flag falls back to the column default of active.
	def := &models.Product{Name: "Pudim", SalePrice: 10}
	if err := svc.CreateProduct(def); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if def.IsActive == nil || !*def.IsActive {
		t.Fatal("product without a flag should default to active")
	}
}

func TestUpdateProductWithoutFlagKeepsCurrentState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	product := &models.Product{Name: "Torta gelada", SalePrice: 30, IsActive: boolp(false)}
	if err := svc.CreateProduct(product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	product.IsActive = nil
	product.SalePrice = 32
	if err := svc.UpdateProduct(product); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("failed to load product: %v", err)
	}
	if stored.IsActive == nil || *stored.IsActive {
		t.Fatal("update without a flag should keep the product inactive")
	}
}

func TestGetActiveProductsFiltersInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(testPricing)
	svc.SetDB(db)

	for _, p := range []*models.Product{
		{Name: "Pudim", SalePrice: 10, IsActive: boolp(true)},
		{Name: "Cocada", SalePrice: 5, IsActive: boolp(false)},
	} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}

	got, err := svc.GetActiveProducts()
	if err != nil {
		t.Fatalf("GetActiveProducts failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Pudim" {
		t.Errorf("active products = %+v, want only Pudim", got)
	}
}
