package services

import (
	"time"

	"DoceGestor/app/models"
)

// DashboardService aggregates the revenue and profit metrics shown on
// the dashboard.
type DashboardService struct {
	*BaseService
	customers *CustomerService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(customers *CustomerService) *DashboardService {
	return &DashboardService{
		BaseService: NewBaseService(),
		customers:   customers,
	}
}

// DashboardMetrics represents the dashboard roll-up
type DashboardMetrics struct {
	DayRevenue      float64 `json:"day_revenue"`
	MonthRevenue    float64 `json:"month_revenue"`
	GrossProfit     float64 `json:"gross_profit"`
	TotalExpenses   float64 `json:"total_expenses"`
	NetProfit       float64 `json:"net_profit"` // Month revenue minus expenses
	DayOrders       int     `json:"day_orders"`
	ResellerRevenue float64 `json:"reseller_revenue"`
	ResellerProfit  float64 `json:"reseller_profit"`

	TopProducts    []TopProduct    `json:"top_products"`
	LastActivities []Activity      `json:"last_activities"`
	CustomerAlerts []CustomerAlert `json:"customer_alerts"`
}

// TopProduct represents a best-selling product for the current month
type TopProduct struct {
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// Activity represents one recent sale shown on the dashboard
type Activity struct {
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	SaleDate     time.Time `json:"sale_date"`
	Amount       float64   `json:"amount"`
}

// GetMetrics computes the dashboard metrics for today and the current
// month.
func (s *DashboardService) GetMetrics() (*DashboardMetrics, error) {
	metrics := &DashboardMetrics{}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	if err := s.db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", startOfDay, endOfDay).
		Select("COALESCE(SUM(total), 0)").
		Row().Scan(&metrics.DayRevenue); err != nil {
		return nil, err
	}

	var dayOrders int64
	if err := s.db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", startOfDay, endOfDay).
		Count(&dayOrders).Error; err != nil {
		return nil, err
	}
	metrics.DayOrders = int(dayOrders)

	if err := s.db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", startOfMonth, endOfMonth).
		Select("COALESCE(SUM(total), 0)").
		Row().Scan(&metrics.MonthRevenue); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", startOfMonth, endOfMonth).
		Select("COALESCE(SUM(gross_profit), 0)").
		Row().Scan(&metrics.GrossProfit); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ? AND customer_type = ?",
			startOfMonth, endOfMonth, "Revendedor").
		Select("COALESCE(SUM(total), 0)").
		Row().Scan(&metrics.ResellerRevenue); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ? AND customer_type = ?",
			startOfMonth, endOfMonth, "Revendedor").
		Select("COALESCE(SUM(gross_profit), 0)").
		Row().Scan(&metrics.ResellerProfit); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Expense{}).
		Where("due_date >= ? AND due_date < ?", startOfMonth, endOfMonth).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&metrics.TotalExpenses); err != nil {
		return nil, err
	}

	// Net profit uses raw revenue rather than summed gross profit:
	// quick sales carry zero gross profit and would understate it.
	metrics.NetProfit = metrics.MonthRevenue - metrics.TotalExpenses

	topProducts, err := s.topProducts(startOfMonth, endOfMonth, 5)
	if err != nil {
		return nil, err
	}
	metrics.TopProducts = topProducts

	activities, err := s.lastActivities(5)
	if err != nil {
		return nil, err
	}
	metrics.LastActivities = activities

	alerts, err := s.customers.GetInactivityAlerts()
	if err != nil {
		return nil, err
	}
	metrics.CustomerAlerts = alerts

	return metrics, nil
}

func (s *DashboardService) topProducts(from, to time.Time, limit int) ([]TopProduct, error) {
	var top []TopProduct
	err := s.db.Model(&models.SaleItem{}).
		Select("produtos.name AS product_name, SUM(venda_itens.quantity) AS quantity_sold, SUM(venda_itens.subtotal) AS revenue").
		Joins("JOIN produtos ON produtos.id = venda_itens.product_id").
		Joins("JOIN vendas ON vendas.id = venda_itens.sale_id").
		Where("vendas.sale_date >= ? AND vendas.sale_date < ?", from, to).
		Group("produtos.name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&top).Error
	return top, err
}

func (s *DashboardService) lastActivities(limit int) ([]Activity, error) {
	var sales []models.Sale
	if err := s.db.Preload("Items.Product").
		Order("sale_date DESC, created_at DESC").
		Limit(limit).
		Find(&sales).Error; err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(sales))
	for _, sale := range sales {
		productName := sale.TypedProduct
		if len(sale.Items) > 0 && sale.Items[0].Product != nil {
			productName = sale.Items[0].Product.Name
		}
		activities = append(activities, Activity{
			CustomerName: sale.CustomerName,
			ProductName:  productName,
			SaleDate:     sale.SaleDate,
			Amount:       sale.Total,
		})
	}
	return activities, nil
}
