package models

import (
	"time"

	"gorm.io/gorm"
)

// Quote lifecycle status
const (
	QuoteStatusPending  = "pendente"
	QuoteStatusApproved = "aprovado"
	QuoteStatusRejected = "rejeitado"
)

// Quote types
const (
	QuoteTypeFinalCustomer = "cliente_final"
	QuoteTypeReseller      = "revendedor"
)

// Quote represents an orçamento sent to a customer or reseller
type Quote struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	QuoteNumber      string         `gorm:"unique;not null" json:"quote_number"`
	CustomerID       *uint          `json:"customer_id,omitempty"`
	Customer         *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CustomerName     string         `gorm:"not null" json:"customer_name"`
	CustomerWhatsApp string         `json:"customer_whatsapp"`
	CustomerAddress  string         `json:"customer_address"`
	CreatedOn        time.Time      `gorm:"type:date" json:"created_on"`
	ValidUntil       time.Time      `gorm:"type:date" json:"valid_until"`
	Items            []QuoteItem    `gorm:"foreignKey:QuoteID" json:"items,omitempty"`
	Subtotal         float64        `json:"subtotal"`
	Total            float64        `json:"total"`
	Notes            string         `json:"notes"`
	Status           string         `gorm:"default:pendente" json:"status"`
	Type             string         `gorm:"default:cliente_final" json:"type"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// QuoteItem is one product line of a quote
type QuoteItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	QuoteID   uint    `gorm:"not null;index" json:"quote_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`

	Quote   *Quote   `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for Quote
func (Quote) TableName() string {
	return "orcamentos"
}

// TableName specifies the table name for QuoteItem
func (QuoteItem) TableName() string {
	return "orcamento_itens"
}
