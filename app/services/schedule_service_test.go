package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"DoceGestor/app/models"
)

func newTestScheduleService(db *gorm.DB) (*ScheduleService, *RecipeService) {
	recipes := newTestRecipeService(db, nil)
	svc := NewScheduleService(recipes)
	svc.SetDB(db)
	return svc, recipes
}

func TestScheduleCreateItemValidation(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestScheduleService(db)

	var verr *ValidationError
	if err := svc.CreateItem(&models.ScheduleItem{Batches: 1}); !errors.As(err, &verr) {
		t.Errorf("missing recipe error = %v, want ValidationError", err)
	}
	if err := svc.CreateItem(&models.ScheduleItem{RecipeID: 1, Batches: 0}); !errors.As(err, &verr) {
		t.Errorf("zero batches error = %v, want ValidationError", err)
	}
}

func TestScheduleWeekWindow(t *testing.T) {
	db := setupTestDB(t)
	svc, recipeSvc := newTestScheduleService(db)

	sugar := seedIngredient(t, db, "Açúcar", "g", 10.00, 1000, 5000)
	recipe := seedRecipe(t, recipeSvc, "Brigadeiro", []models.RecipeIngredient{
		{IngredientID: sugar.ID, Quantity: 100, Unit: "g"},
	})

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{0, 3, 6, 7, -1} {
		item := &models.ScheduleItem{
			RecipeID:       recipe.ID,
			ProductionDate: monday.AddDate(0, 0, offset),
			Batches:        1,
		}
		if err := svc.CreateItem(item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}

	week, err := svc.GetWeek(monday)
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if len(week) != 3 {
		t.Errorf("week items = %d, want 3 (day 7 and day -1 excluded)", len(week))
	}
}

func TestScheduleStartAndComplete(t *testing.T) {
	db := setupTestDB(t)
	svc, recipeSvc := newTestScheduleService(db)

	sugar := seedIngredient(t, db, "Açúcar", "g", 10.00, 1000, 5000)
	recipe := seedRecipe(t, recipeSvc, "Brigadeiro", []models.RecipeIngredient{
		{IngredientID: sugar.ID, Quantity: 100, Unit: "g"},
	})

	item := &models.ScheduleItem{
		RecipeID:       recipe.ID,
		ProductionDate: time.Now(),
		Batches:        2,
	}
	if err := svc.CreateItem(item); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if err := svc.StartItem(item.ID); err != nil {
		t.Fatalf("StartItem failed: %v", err)
	}
	var stored models.ScheduleItem
	db.First(&stored, item.ID)
	if stored.Status != "em_producao" {
		t.Errorf("status = %q, want em_producao", stored.Status)
	}

	event, err := svc.CompleteItem(item.ID)
	if err != nil {
		t.Fatalf("CompleteItem failed: %v", err)
	}
	if event.Batches != 2 {
		t.Errorf("event batches = %d, want 2", event.Batches)
	}

	var completed models.ScheduleItem
	if err := db.First(&completed, item.ID).Error; err != nil {
		t.Fatalf("failed to reload item: %v", err)
	}
	if completed.Status != "concluido" {
		t.Errorf("status = %q, want concluido", completed.Status)
	}

	var ing models.Ingredient
	db.First(&ing, sugar.ID)
	if ing.Stock != 4800 {
		t.Errorf("sugar stock = %v, want 5000 - 2*100 = 4800", ing.Stock)
	}

	// Completing again must fail.
	if _, err := svc.CompleteItem(item.ID); err == nil {
		t.Error("second CompleteItem succeeded, want error")
	}
}

func TestScheduleCompleteKeepsStatusOnShortage(t *testing.T) {
	db := setupTestDB(t)
	svc, recipeSvc := newTestScheduleService(db)

	flour := seedIngredient(t, db, "Farinha", "g", 5.00, 1000, 50)
	recipe := seedRecipe(t, recipeSvc, "Bolo", []models.RecipeIngredient{
		{IngredientID: flour.ID, Quantity: 100, Unit: "g"},
	})

	item := &models.ScheduleItem{
		RecipeID:       recipe.ID,
		ProductionDate: time.Now(),
		Batches:        1,
	}
	if err := svc.CreateItem(item); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	_, err := svc.CompleteItem(item.ID)
	var serr *InsufficientStockError
	if !errors.As(err, &serr) {
		t.Fatalf("CompleteItem error = %v, want InsufficientStockError", err)
	}

	var stored models.ScheduleItem
	db.First(&stored, item.ID)
	if stored.Status != "pendente" {
		t.Errorf("status = %q, want pendente after shortage", stored.Status)
	}

	// Restock and retry.
	ingSvc := NewIngredientService()
	ingSvc.SetDB(db)
	if err := ingSvc.RestockIngredient(flour.ID, 100, ""); err != nil {
		t.Fatalf("RestockIngredient failed: %v", err)
	}
	if _, err := svc.CompleteItem(item.ID); err != nil {
		t.Fatalf("CompleteItem after restock failed: %v", err)
	}
}

func TestScheduleGetDueOn(t *testing.T) {
	db := setupTestDB(t)
	svc, recipeSvc := newTestScheduleService(db)

	sugar := seedIngredient(t, db, "Açúcar", "g", 10.00, 1000, 5000)
	recipe := seedRecipe(t, recipeSvc, "Brigadeiro", []models.RecipeIngredient{
		{IngredientID: sugar.ID, Quantity: 100, Unit: "g"},
	})

	today := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	pending := &models.ScheduleItem{RecipeID: recipe.ID, ProductionDate: today, Batches: 1}
	done := &models.ScheduleItem{RecipeID: recipe.ID, ProductionDate: today, Batches: 1, Status: "concluido"}
	tomorrow := &models.ScheduleItem{RecipeID: recipe.ID, ProductionDate: today.AddDate(0, 0, 1), Batches: 1}
	for _, item := range []*models.ScheduleItem{pending, done, tomorrow} {
		if err := svc.CreateItem(item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}

	due, err := svc.GetDueOn(today)
	if err != nil {
		t.Fatalf("GetDueOn failed: %v", err)
	}
	if len(due) != 1 || due[0].ID != pending.ID {
		t.Errorf("due items = %+v, want only the pending item for today", due)
	}
}
