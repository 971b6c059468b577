package models

import (
	"time"

	"gorm.io/gorm"
)

// Ingredient represents a raw material (insumo) purchased in lots
type Ingredient struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null;index" json:"name"`
	PurchaseUnit  string         `gorm:"default:un" json:"purchase_unit"` // g, kg, ml, l, un, dz, cx, pct
	PurchasePrice float64        `gorm:"default:0" json:"purchase_price"` // Total cost of one purchase lot
	PurchaseQty   float64        `gorm:"default:1" json:"purchase_qty"`   // Lot size, in purchase units
	Stock         float64        `gorm:"default:0" json:"stock"`          // On hand, in purchase units
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UnitCost returns the cost of a single purchase unit.
// A lot size of zero would divide by zero, so it costs out at zero instead.
func (i *Ingredient) UnitCost() float64 {
	if i.PurchaseQty <= 0 {
		return 0
	}
	return i.PurchasePrice / i.PurchaseQty
}

// IngredientLot records one purchase entry for an ingredient
type IngredientLot struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IngredientID uint      `gorm:"not null;index" json:"ingredient_id"`
	PricePerUnit float64   `json:"price_per_unit"`
	QtyAvailable float64   `json:"qty_available"`
	EntryDate    time.Time `json:"entry_date"`
	CreatedAt    time.Time `json:"created_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}

// IngredientMovement tracks all ingredient stock changes
type IngredientMovement struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IngredientID uint      `gorm:"not null;index" json:"ingredient_id"`
	Type         string    `gorm:"not null" json:"type"`     // purchase, production, adjustment
	Quantity     float64   `gorm:"not null" json:"quantity"` // Positive for additions, negative for deductions
	PreviousQty  float64   `json:"previous_qty"`
	NewQty       float64   `json:"new_qty"`
	Reference    string    `json:"reference"` // Production event, restock reason, etc.
	CreatedAt    time.Time `json:"created_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// TableName specifies the table name for Ingredient
func (Ingredient) TableName() string {
	return "insumos"
}

// TableName specifies the table name for IngredientLot
func (IngredientLot) TableName() string {
	return "insumos_lotes"
}

// TableName specifies the table name for IngredientMovement
func (IngredientMovement) TableName() string {
	return "insumo_movimentos"
}
