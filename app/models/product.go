package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a sellable item backed by a recipe.
// ProductionCost is copied from the recipe when the product is saved;
// later recipe edits do not resync it until the product is saved again.
type Product struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `json:"description"`
	Photo           string         `gorm:"type:text" json:"photo"` // Base64 encoded image
	RecipeID        *uint          `gorm:"index" json:"recipe_id,omitempty"`
	Recipe          *Recipe        `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	ProductionCost  float64        `gorm:"default:0" json:"production_cost"`
	AdditionalCosts float64        `gorm:"default:0" json:"additional_costs"`
	ProfitMargin    float64        `gorm:"default:35" json:"profit_margin"`
	SalePrice       float64        `gorm:"not null" json:"sale_price"`
	ResalePrice     float64        `gorm:"default:0" json:"resale_price"`
	Stock           int            `gorm:"default:0" json:"stock"`
	MinStock        int            `gorm:"default:0" json:"min_stock"`
	IsActive        *bool          `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// ProductMovement tracks finished-goods stock changes
type ProductMovement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Type        string    `gorm:"not null" json:"type"` // production, adjustment
	Quantity    int       `gorm:"not null" json:"quantity"`
	PreviousQty int       `json:"previous_qty"`
	NewQty      int       `json:"new_qty"`
	Reference   string    `json:"reference"`
	CreatedAt   time.Time `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "produtos"
}

// TableName specifies the table name for ProductMovement
func (ProductMovement) TableName() string {
	return "produto_movimentos"
}
