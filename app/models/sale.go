package models

import (
	"time"

	"gorm.io/gorm"
)

// Sale origin channels
const (
	SaleOriginWhatsApp   = "WhatsApp"
	SaleOriginInstagram  = "Instagram"
	SaleOriginIFood      = "iFood"
	SaleOriginPresencial = "Presencial"
)

// Sale payment methods
const (
	PaymentPix     = "PIX"
	PaymentCash    = "Dinheiro"
	PaymentCard    = "Cartão"
	PaymentOnTerms = "A Prazo"
)

// Sale lifecycle status
const (
	SaleStatusOpen      = "em_aberto"
	SaleStatusPaid      = "pago"
	SaleStatusShipped   = "enviado"
	SaleStatusCompleted = "concluido"
)

// Sale represents a completed or open venda.
// Sales never touch ingredient or product stock; stock is driven by
// production only.
type Sale struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	SaleNumber       string         `gorm:"unique;not null" json:"sale_number"`
	CustomerID       *uint          `json:"customer_id,omitempty"`
	Customer         *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CustomerName     string         `json:"customer_name"`
	CustomerWhatsApp string         `json:"customer_whatsapp"`
	CustomerAddress  string         `json:"customer_address"`
	Items            []SaleItem     `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Origin           string         `json:"origin"`         // WhatsApp, Instagram, iFood, Presencial
	PaymentMethod    string         `json:"payment_method"` // PIX, Dinheiro, Cartão, A Prazo
	PaymentStatus    string         `gorm:"default:Pendente" json:"payment_status"` // Pago, Pendente
	ResellerID       *uint          `json:"reseller_id,omitempty"`
	Reseller         *Reseller      `gorm:"foreignKey:ResellerID" json:"reseller,omitempty"`
	Subtotal         float64        `json:"subtotal"`
	Freight          float64        `gorm:"default:0" json:"freight"`
	Discount         float64        `gorm:"default:0" json:"discount"`
	Total            float64        `json:"total"`
	Type             string         `gorm:"default:normal" json:"type"`                 // normal, revenda, rapida
	CustomerType     string         `gorm:"default:Cliente Final" json:"customer_type"` // Cliente Final, Revendedor
	GrossProfit      float64        `gorm:"default:0" json:"gross_profit"`
	TypedProduct     string         `json:"typed_product"` // Quick sales only: free-typed description
	Status           string         `gorm:"default:em_aberto" json:"status"`
	SaleDate         time.Time      `json:"sale_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// SaleItem is one product line of a sale
type SaleItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SaleID    uint    `gorm:"not null;index" json:"sale_id"`
	ProductID *uint   `gorm:"index" json:"product_id,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`

	Sale    *Sale    `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for Sale
func (Sale) TableName() string {
	return "vendas"
}

// TableName specifies the table name for SaleItem
func (SaleItem) TableName() string {
	return "venda_itens"
}
