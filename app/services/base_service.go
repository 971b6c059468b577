package services

import (
	"fmt"

	"gorm.io/gorm"

	"DoceGestor/app/database"
	"DoceGestor/app/models"
)

// BaseService carries the database handle and transaction helper that
// every service embeds.
type BaseService struct {
	db *gorm.DB
}

// NewBaseService creates a new base service instance
func NewBaseService() *BaseService {
	return &BaseService{
		db: database.GetDB(),
	}
}

// SetDB sets the database connection (useful for testing)
func (b *BaseService) SetDB(db *gorm.DB) {
	b.db = db
}

// EnsureDB checks if database is initialized and returns an error if not
func (b *BaseService) EnsureDB() error {
	if b.db == nil {
		return fmt.Errorf("database not initialized")
	}
	return nil
}

// WithTransaction executes a function within a database transaction
func (b *BaseService) WithTransaction(fn func(tx *gorm.DB) error) error {
	if err := b.EnsureDB(); err != nil {
		return err
	}
	return b.db.Transaction(fn)
}

// CreateIngredientMovement creates an ingredient movement record.
// Every stock change goes through here so the ledger stays complete.
func CreateIngredientMovement(tx *gorm.DB, ingredientID uint, movementType string, quantity, previousQty, newQty float64, reference string) error {
	movement := models.IngredientMovement{
		IngredientID: ingredientID,
		Type:         movementType,
		Quantity:     quantity,
		PreviousQty:  previousQty,
		NewQty:       newQty,
		Reference:    reference,
	}
	return tx.Create(&movement).Error
}

// CreateProductMovement creates a finished-goods movement record
func CreateProductMovement(tx *gorm.DB, productID uint, movementType string, quantity, previousQty, newQty int, reference string) error {
	movement := models.ProductMovement{
		ProductID:   productID,
		Type:        movementType,
		Quantity:    quantity,
		PreviousQty: previousQty,
		NewQty:      newQty,
		Reference:   reference,
	}
	return tx.Create(&movement).Error
}
