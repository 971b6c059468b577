package services

import (
	"errors"
	"testing"

	"DoceGestor/app/models"
)

func TestCreateIngredientRecordsLotAndInitialStock(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService()
	svc.SetDB(db)

	ing := &models.Ingredient{
		Name:          "Leite condensado",
		PurchaseUnit:  "un",
		PurchasePrice: 6.50,
		PurchaseQty:   1,
		Stock:         12,
	}
	if err := svc.CreateIngredient(ing); err != nil {
		t.Fatalf("CreateIngredient failed: %v", err)
	}

	lots, err := svc.GetIngredientLots(ing.ID)
	if err != nil {
		t.Fatalf("GetIngredientLots failed: %v", err)
	}
	if len(lots) != 1 {
		t.Fatalf("lots = %d, want 1", len(lots))
	}
	if !nearlyEqual(lots[0].PricePerUnit, 6.50) {
		t.Errorf("lot price per unit = %v, want 6.50", lots[0].PricePerUnit)
	}

	movements, err := svc.GetIngredientMovements(ing.ID)
	if err != nil {
		t.Fatalf("GetIngredientMovements failed: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("movements = %d, want initial stock entry", len(movements))
	}
	if movements[0].Type != "adjustment" || movements[0].NewQty != 12 {
		t.Errorf("movement = %+v, want adjustment to 12", movements[0])
	}
}

func TestCreateIngredientRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService()
	svc.SetDB(db)

	if err := svc.CreateIngredient(&models.Ingredient{Name: "Açúcar", PurchaseUnit: "g"}); err != nil {
		t.Fatalf("CreateIngredient failed: %v", err)
	}

	err := svc.CreateIngredient(&models.Ingredient{Name: "AÇÚCAR", PurchaseUnit: "g"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("duplicate create error = %v, want ValidationError", err)
	}
}

func TestCreateIngredientRejectsUnknownUnit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService()
	svc.SetDB(db)

	err := svc.CreateIngredient(&models.Ingredient{Name: "Farinha", PurchaseUnit: "sacas"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("invalid unit error = %v, want ValidationError", err)
	}
}

func TestUpdateIngredientStockEditCreatesMovement(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService()
	svc.SetDB(db)

	ing := seedIngredient(t, db, "Farinha", "g", 5.00, 1000, 500)

	ing.Stock = 300
	if err := svc.UpdateIngredient(ing, false); err != nil {
		t.Fatalf("UpdateIngredient failed: %v", err)
	}

	movements, _ := svc.GetIngredientMovements(ing.ID)
	if len(movements) != 1 {
		t.Fatalf("movements = %d, want 1 adjustment", len(movements))
	}
	if movements[0].Quantity != -200 || movements[0].PreviousQty != 500 || movements[0].NewQty != 300 {
		t.Errorf("movement = %+v, want -200 from 500 to 300", movements[0])
	}
}

func TestUpdateIngredientNewLotFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService()
	svc.SetDB(db)

	ing := seedIngredient(t, db, "Farinha", "g", 5.00, 1000, 500)

	// Price edit without the flag records no lot.
	ing.PurchasePrice = 6.00
	if err := svc.UpdateIngredient(ing, false); err != nil {
		t.Fatalf("UpdateIngredient failed: %v", err)
	}
	lots, _ := svc.GetIngredientLots(ing.ID)
	if len(lots) != 0 {
		t.Fatalf("lots = %d, want 0 without new lot flag", len(lots))
	}

	if err := svc.UpdateIngredient(ing, true); err != nil {
		t.Fatalf("UpdateIngredient failed: %v", err)
	}
	lots, _ = svc.GetIngredientLots(ing.ID)
	if len(lots) != 1 {
		t.Fatalf("lots = %d, want 1 with new lot flag", len(lots))
	}
	if !nearlyEqual(lots[0].PricePerUnit, 0.006) {
		t.Errorf("lot price per unit = %v, want 6.00/1000", lots[0].PricePerUnit)
	}
}

func TestRestockIngredient(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService()
	svc.SetDB(db)

	ing := seedIngredient(t, db, "Cacau", "g", 20.00, 500, 100)

	if err := svc.RestockIngredient(ing.ID, 500, "Compra no atacado"); err != nil {
		t.Fatalf("RestockIngredient failed: %v", err)
	}

	stored, _ := svc.GetIngredient(ing.ID)
	if stored.Stock != 600 {
		t.Errorf("stock = %v, want 600", stored.Stock)
	}

	movements, _ := svc.GetIngredientMovements(ing.ID)
	if len(movements) != 1 || movements[0].Type != "purchase" {
		t.Fatalf("movements = %+v, want one purchase entry", movements)
	}

	var verr *ValidationError
	if err := svc.RestockIngredient(ing.ID, 0, ""); !errors.As(err, &verr) {
		t.Errorf("zero restock error = %v, want ValidationError", err)
	}
	if err := svc.RestockIngredient(ing.ID, -5, ""); !errors.As(err, &verr) {
		t.Errorf("negative restock error = %v, want ValidationError", err)
	}
}

func TestDeleteIngredientBlockedWhileRecipesUseIt(t *testing.T) {
	db := setupTestDB(t)
	ingSvc := NewIngredientService()
	ingSvc.SetDB(db)
	recipeSvc := newTestRecipeService(db, nil)

	sugar := seedIngredient(t, db, "Açúcar", "g", 10.00, 1000, 500)
	recipe := seedRecipe(t, recipeSvc, "Brigadeiro", []models.RecipeIngredient{
		{IngredientID: sugar.ID, Quantity: 100, Unit: "g"},
	})

	err := ingSvc.DeleteIngredient(sugar.ID)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("DeleteIngredient error = %v, want ValidationError", err)
	}

	if err := recipeSvc.DeleteRecipe(recipe.ID); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}
	if err := ingSvc.DeleteIngredient(sugar.ID); err != nil {
		t.Fatalf("DeleteIngredient after recipe removal failed: %v", err)
	}
}

func TestGetIngredientByNameIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService()
	svc.SetDB(db)

	seedIngredient(t, db, "Chocolate em barra", "g", 25.00, 1000, 0)

	found, err := svc.GetIngredientByName("chocolate em barra")
	if err != nil {
		t.Fatalf("GetIngredientByName failed: %v", err)
	}
	if found.Name != "Chocolate em barra" {
		t.Errorf("found %q, want Chocolate em barra", found.Name)
	}

	// Folding must cover accented letters, not just ASCII.
	seedIngredient(t, db, "Açúcar cristal", "g", 4.00, 1000, 0)
	found, err = svc.GetIngredientByName("AÇÚCAR CRISTAL")
	if err != nil {
		t.Fatalf("GetIngredientByName failed for accented name: %v", err)
	}
	if found.Name != "Açúcar cristal" {
		t.Errorf("found %q, want Açúcar cristal", found.Name)
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(250, "g"); got != "250 g" {
		t.Errorf("FormatQuantity = %q, want %q", got, "250 g")
	}
	if got := FormatQuantity(1.5, "kg"); got != "1.5 kg" {
		t.Errorf("FormatQuantity = %q, want %q", got, "1.5 kg")
	}
}
