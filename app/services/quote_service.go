package services

import (
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"DoceGestor/app/models"
)

// QuoteService handles orçamentos
type QuoteService struct {
	*BaseService
	sales *SalesService
}

// NewQuoteService creates a new quote service
func NewQuoteService(sales *SalesService) *QuoteService {
	return &QuoteService{
		BaseService: NewBaseService(),
		sales:       sales,
	}
}

// GetAllQuotes retrieves all quotes with items, newest first
func (s *QuoteService) GetAllQuotes() ([]models.Quote, error) {
	var quotes []models.Quote
	err := s.db.Preload("Items.Product").
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}

// GetQuote retrieves a single quote by ID
func (s *QuoteService) GetQuote(id uint) (*models.Quote, error) {
	var quote models.Quote
	err := s.db.Preload("Items.Product").First(&quote, id).Error
	return &quote, err
}

// CreateQuote creates a quote with a sequential ORC number. Reseller
// quotes are priced at the products' resale price, final-customer
// quotes at the sale price, unless the item carries an explicit price.
func (s *QuoteService) CreateQuote(quote *models.Quote) error {
	if quote.CustomerName == "" {
		return NewValidationError("nome do cliente é obrigatório")
	}
	if len(quote.Items) == 0 {
		return NewValidationError("orçamento sem itens")
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		items := quote.Items
		quote.Items = nil

		subtotal := 0.0
		for i := range items {
			if items[i].Quantity <= 0 {
				return NewValidationError("quantidade do item deve ser positiva")
			}
			if items[i].UnitPrice == 0 {
				var product models.Product
				if err := tx.First(&product, items[i].ProductID).Error; err != nil {
					return fmt.Errorf("produto não encontrado: %w", err)
				}
				if quote.Type == models.QuoteTypeReseller {
					items[i].UnitPrice = product.ResalePrice
				} else {
					items[i].UnitPrice = product.SalePrice
				}
			}
			items[i].Subtotal = items[i].UnitPrice * float64(items[i].Quantity)
			subtotal += items[i].Subtotal
		}

		var count int64
		if err := tx.Model(&models.Quote{}).Unscoped().Count(&count).Error; err != nil {
			return err
		}
		quote.QuoteNumber = fmt.Sprintf("ORC-%03d", count+1)
		quote.Subtotal = subtotal
		quote.Total = subtotal
		if quote.CreatedOn.IsZero() {
			quote.CreatedOn = time.Now()
		}
		if quote.ValidUntil.IsZero() {
			quote.ValidUntil = quote.CreatedOn.AddDate(0, 0, 7)
		}

		if err := tx.Create(quote).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].QuoteID = quote.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		quote.Items = items
		return nil
	})
}

// UpdateQuote updates quote header fields
func (s *QuoteService) UpdateQuote(quote *models.Quote) error {
	return s.db.Model(&models.Quote{}).
		Where("id = ?", quote.ID).
		Updates(map[string]interface{}{
			"status":      quote.Status,
			"valid_until": quote.ValidUntil,
			"notes":       quote.Notes,
		}).Error
}

// DeleteQuote removes a quote and its items
func (s *QuoteService) DeleteQuote(id uint) error {
	return s.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&models.QuoteItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Quote{}, id).Error
	})
}

// ApproveQuote marks a pending quote approved and records the matching
// sale. Both writes share one transaction: a failed conversion rolls
// the status back to pendente.
func (s *QuoteService) ApproveQuote(id uint) (*models.Sale, error) {
	quote, err := s.GetQuote(id)
	if err != nil {
		return nil, err
	}
	if quote.Status != models.QuoteStatusPending {
		return nil, NewValidationError("orçamento %s não está pendente", quote.QuoteNumber)
	}

	customerType := "Cliente Final"
	saleType := "normal"
	if quote.Type == models.QuoteTypeReseller {
		customerType = "Revendedor"
		saleType = "revenda"
	}

	sale := &models.Sale{
		CustomerID:       quote.CustomerID,
		CustomerName:     quote.CustomerName,
		CustomerWhatsApp: quote.CustomerWhatsApp,
		CustomerAddress:  quote.CustomerAddress,
		Origin:           models.SaleOriginWhatsApp,
		PaymentStatus:    "Pendente",
		Type:             saleType,
		CustomerType:     customerType,
	}
	for _, item := range quote.Items {
		productID := item.ProductID
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID: &productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	err = s.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Quote{}).
			Where("id = ?", id).
			Update("status", models.QuoteStatusApproved).Error; err != nil {
			return err
		}
		if err := s.sales.createSale(tx, sale); err != nil {
			return fmt.Errorf("falha ao converter orçamento em venda: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.sales.events, EventSaleRecorded, sale)
	return sale, nil
}

// RejectQuote marks a pending quote rejected
func (s *QuoteService) RejectQuote(id uint) error {
	return s.db.Model(&models.Quote{}).
		Where("id = ? AND status = ?", id, models.QuoteStatusPending).
		Update("status", models.QuoteStatusRejected).Error
}

// QuoteQRCode renders a PNG QR code summarizing the quote, sized for
// WhatsApp sharing.
func (s *QuoteService) QuoteQRCode(id uint) ([]byte, error) {
	quote, err := s.GetQuote(id)
	if err != nil {
		return nil, err
	}

	payload := fmt.Sprintf("Orçamento %s\nCliente: %s\nTotal: R$ %.2f\nVálido até: %s",
		quote.QuoteNumber, quote.CustomerName, quote.Total,
		quote.ValidUntil.Format("02/01/2006"))

	return qrcode.Encode(payload, qrcode.Medium, 256)
}
