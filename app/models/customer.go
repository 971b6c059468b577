package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a cliente
type Customer struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Code           string         `gorm:"index" json:"code"`
	Name           string         `gorm:"not null" json:"name"`
	Phone          string         `json:"phone"`
	WhatsApp       string         `json:"whatsapp"`
	Address        string         `json:"address"`
	FullAddress    string         `json:"full_address"`
	PersonType     string         `gorm:"default:Física" json:"person_type"` // Física, Jurídica
	TotalPurchases float64        `gorm:"default:0" json:"total_purchases"`
	LastPurchaseAt *time.Time     `json:"last_purchase_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Reseller represents a revendedor buying at resale price
type Reseller struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Phone      string         `json:"phone"`
	Address    string         `json:"address"`
	Commission float64        `gorm:"default:0" json:"commission"` // Percent
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Expense represents a gasto with a due date and payment status
type Expense struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Description string         `gorm:"not null" json:"description"`
	Amount      float64        `gorm:"not null" json:"amount"`
	DueDate     time.Time      `gorm:"type:date" json:"due_date"`
	Category    string         `json:"category"`
	Status      string         `gorm:"default:a_pagar" json:"status"` // pago, a_pagar
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "clientes"
}

// TableName specifies the table name for Reseller
func (Reseller) TableName() string {
	return "revendedores"
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "gastos"
}
