package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"DoceGestor/app/models"
)

// SalesService handles vendas. Sales never mutate stock: finished
// goods are stocked by production, not consumed by sale records.
type SalesService struct {
	*BaseService
	events Publisher
}

// NewSalesService creates a new sales service
func NewSalesService(events Publisher) *SalesService {
	return &SalesService{
		BaseService: NewBaseService(),
		events:      events,
	}
}

// GetAllSales retrieves all sales with items, newest first
func (s *SalesService) GetAllSales() ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Items.Product").
		Preload("Reseller").
		Order("sale_date DESC, created_at DESC").
		Find(&sales).Error
	return sales, err
}

// GetSale retrieves a single sale by ID
func (s *SalesService) GetSale(id uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.Preload("Items.Product").
		Preload("Reseller").
		First(&sale, id).Error
	return &sale, err
}

// CreateSale records a sale. Item subtotals, the sale totals and the
// gross profit (unit price minus production cost, per item) are
// computed here, not trusted from the caller.
func (s *SalesService) CreateSale(sale *models.Sale) error {
	err := s.WithTransaction(func(tx *gorm.DB) error {
		return s.createSale(tx, sale)
	})
	if err != nil {
		return err
	}

	publish(s.events, EventSaleRecorded, sale)
	return nil
}

// createSale records a sale inside the caller's transaction, so quote
// approval can convert and record in one atomic step.
func (s *SalesService) createSale(tx *gorm.DB, sale *models.Sale) error {
	if len(sale.Items) == 0 {
		return NewValidationError("venda sem itens")
	}

	items := sale.Items
	sale.Items = nil

	subtotal := 0.0
	grossProfit := 0.0
	for i := range items {
		if items[i].Quantity <= 0 {
			return NewValidationError("quantidade do item deve ser positiva")
		}
		items[i].Subtotal = items[i].UnitPrice * float64(items[i].Quantity)
		subtotal += items[i].Subtotal

		if items[i].ProductID != nil {
			var product models.Product
			if err := tx.First(&product, *items[i].ProductID).Error; err != nil {
				return fmt.Errorf("produto não encontrado: %w", err)
			}
			grossProfit += (items[i].UnitPrice - product.ProductionCost) * float64(items[i].Quantity)
		}
	}

	sale.SaleNumber = generateSaleNumber()
	sale.Subtotal = subtotal
	sale.Total = subtotal + sale.Freight - sale.Discount
	sale.GrossProfit = grossProfit
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}
	if sale.Status == "" {
		sale.Status = models.SaleStatusOpen
	}

	if err := tx.Create(sale).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].SaleID = sale.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	sale.Items = items

	return s.rollUpCustomer(tx, sale)
}

// CreateQuickSale records a venda rápida: a free-typed product with a
// single total. No product linkage, so the gross profit is unknown and
// recorded as zero.
func (s *SalesService) CreateQuickSale(sale *models.Sale, total float64) error {
	if sale.TypedProduct == "" {
		return NewValidationError("produto digitado é obrigatório")
	}
	if total <= 0 {
		return NewValidationError("valor total deve ser positivo")
	}

	sale.SaleNumber = generateSaleNumber()
	sale.Type = "rapida"
	sale.Subtotal = total
	sale.Total = total
	sale.GrossProfit = 0
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}
	if sale.Status == "" {
		sale.Status = models.SaleStatusOpen
	}

	err := s.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		return s.rollUpCustomer(tx, sale)
	})
	if err != nil {
		return err
	}

	publish(s.events, EventSaleRecorded, sale)
	return nil
}

// UpdateSale updates mutable sale fields (status, payment)
func (s *SalesService) UpdateSale(sale *models.Sale) error {
	return s.db.Model(&models.Sale{}).
		Where("id = ?", sale.ID).
		Updates(map[string]interface{}{
			"status":         sale.Status,
			"payment_status": sale.PaymentStatus,
			"payment_method": sale.PaymentMethod,
		}).Error
}

// DeleteSale removes a sale and its items
func (s *SalesService) DeleteSale(id uint) error {
	return s.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Sale{}, id).Error
	})
}

// rollUpCustomer keeps the customer's purchase total and last purchase
// date current.
func (s *SalesService) rollUpCustomer(tx *gorm.DB, sale *models.Sale) error {
	if sale.CustomerID == nil {
		return nil
	}
	var customer models.Customer
	if err := tx.First(&customer, *sale.CustomerID).Error; err != nil {
		return err
	}
	now := sale.SaleDate
	customer.TotalPurchases += sale.Total
	customer.LastPurchaseAt = &now
	return tx.Save(&customer).Error
}

func generateSaleNumber() string {
	return fmt.Sprintf("VND-%d", time.Now().UnixNano())
}
