package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe represents a receita with its costed ingredient list
type Recipe struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	Name            string             `gorm:"not null" json:"name"`
	Instructions    string             `gorm:"type:text" json:"instructions"`
	Yield           string             `json:"yield"` // Free text, e.g. "10 fatias"
	Ingredients     []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	AdditionalCosts float64            `gorm:"default:0" json:"additional_costs"` // Packaging, gas
	ProfitMargin    float64            `gorm:"default:35" json:"profit_margin"`   // Percent
	TotalCost       float64            `gorm:"default:0" json:"total_cost"`
	SalePrice       float64            `gorm:"default:0" json:"sale_price"`
	ResalePrice     float64            `gorm:"default:0" json:"resale_price"`
	FinishedStock   int                `gorm:"default:0" json:"finished_stock"` // Batches produced, not yet sold
	SubRecipeID     *uint              `json:"sub_recipe_id,omitempty"`
	SubRecipe       *Recipe            `gorm:"foreignKey:SubRecipeID" json:"sub_recipe,omitempty"`
	SubPortions     float64            `gorm:"default:0" json:"sub_portions"` // Portions of the sub-recipe consumed
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`
}

// RecipeIngredient is one costed line of a recipe. Lines are owned by
// the recipe and replaced wholesale when the ingredient list is edited.
type RecipeIngredient struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RecipeID     uint      `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint      `gorm:"not null;index" json:"ingredient_id"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	Unit         string    `gorm:"default:un" json:"unit"` // kg, g, l, ml, un, caixa
	Cost         float64   `gorm:"default:0" json:"cost"`  // Cached, recomputed on every edit
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}

// ProductionEvent is an immutable log row for one production run
type ProductionEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RecipeID   uint      `gorm:"not null;index" json:"recipe_id"`
	Batches    int       `gorm:"not null" json:"batches"`
	ProducedOn time.Time `gorm:"type:date" json:"produced_on"`
	CreatedAt  time.Time `json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

// ScheduleItem is one entry of the weekly production cronograma
type ScheduleItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RecipeID       uint      `gorm:"not null;index" json:"recipe_id"`
	ProductionDate time.Time `gorm:"type:date" json:"production_date"`
	Batches        int       `gorm:"default:1" json:"batches"`
	TimeOfDay      string    `json:"time_of_day"`              // Optional "HH:MM"
	Status         string    `gorm:"default:pendente" json:"status"` // pendente, em_producao, concluido
	CreatedAt      time.Time `json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

// TableName specifies the table name for Recipe
func (Recipe) TableName() string {
	return "receitas"
}

// TableName specifies the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "receita_ingredientes"
}

// TableName specifies the table name for ProductionEvent
func (ProductionEvent) TableName() string {
	return "producao_receitas"
}

// TableName specifies the table name for ScheduleItem
func (ScheduleItem) TableName() string {
	return "cronograma_itens"
}
