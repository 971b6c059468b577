package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"DoceGestor/app/models"
)

// Inactivity thresholds for customer alerts, in days.
const (
	InactivityWarningDays = 15
	InactivityAlertDays   = 30
)

// CustomerAlert flags a customer who has not bought for a while
type CustomerAlert struct {
	Customer          models.Customer `json:"customer"`
	DaysWithoutBuying int             `json:"days_without_buying"`
	Kind              string          `json:"kind"` // aviso, alerta
}

// CustomerService handles clientes
type CustomerService struct {
	*BaseService
}

// NewCustomerService creates a new customer service
func NewCustomerService() *CustomerService {
	return &CustomerService{
		BaseService: NewBaseService(),
	}
}

// GetAllCustomers retrieves all customers ordered by name
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Order("name ASC").Find(&customers).Error
	return customers, err
}

// GetCustomer retrieves a single customer by ID
func (s *CustomerService) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.First(&customer, id).Error
	return &customer, err
}

// CreateCustomer creates a customer, assigning a sequential code
func (s *CustomerService) CreateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return NewValidationError("nome do cliente é obrigatório")
	}

	return s.WithTransaction(func(tx *gorm.DB) error {
		if customer.Code == "" {
			var count int64
			if err := tx.Model(&models.Customer{}).Count(&count).Error; err != nil {
				return err
			}
			customer.Code = fmt.Sprintf("CLI-%03d", count+1)
		}
		return tx.Create(customer).Error
	})
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(customer *models.Customer) error {
	return s.db.Save(customer).Error
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(id uint) error {
	return s.db.Delete(&models.Customer{}, id).Error
}

// GetInactivityAlerts lists customers who have not bought for at least
// the warning threshold. Customers who never bought are skipped.
func (s *CustomerService) GetInactivityAlerts() ([]CustomerAlert, error) {
	var customers []models.Customer
	if err := s.db.Where("last_purchase_at IS NOT NULL").Find(&customers).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	var alerts []CustomerAlert
	for _, c := range customers {
		days := int(now.Sub(*c.LastPurchaseAt).Hours() / 24)
		switch {
		case days >= InactivityAlertDays:
			alerts = append(alerts, CustomerAlert{Customer: c, DaysWithoutBuying: days, Kind: "alerta"})
		case days >= InactivityWarningDays:
			alerts = append(alerts, CustomerAlert{Customer: c, DaysWithoutBuying: days, Kind: "aviso"})
		}
	}
	return alerts, nil
}
