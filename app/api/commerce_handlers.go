package api

import (
	"github.com/gin-gonic/gin"

	"DoceGestor/app/models"
)

// ListSales returns all sales
func (h *Handlers) ListSales(c *gin.Context) {
	sales, err := h.Sales.GetAllSales()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, sales)
}

// GetSale returns one sale
func (h *Handlers) GetSale(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	sale, err := h.Sales.GetSale(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, sale)
}

// CreateSale records a sale
func (h *Handlers) CreateSale(c *gin.Context) {
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Sales.CreateSale(&sale); err != nil {
		fail(c, err)
		return
	}
	created(c, sale)
}

type quickSaleRequest struct {
	models.Sale
	Total float64 `json:"total"`
}

// CreateQuickSale records a venda rápida with a free-typed product
func (h *Handlers) CreateQuickSale(c *gin.Context) {
	var req quickSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Sales.CreateQuickSale(&req.Sale, req.Total); err != nil {
		fail(c, err)
		return
	}
	created(c, req.Sale)
}

// UpdateSale updates status and payment fields of a sale
func (h *Handlers) UpdateSale(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		badRequest(c, err)
		return
	}
	sale.ID = id
	if err := h.Sales.UpdateSale(&sale); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// DeleteSale removes a sale
func (h *Handlers) DeleteSale(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Sales.DeleteSale(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// ListCustomers returns all customers
func (h *Handlers) ListCustomers(c *gin.Context) {
	customers, err := h.Customers.GetAllCustomers()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, customers)
}

// ListCustomerAlerts returns inactivity alerts
func (h *Handlers) ListCustomerAlerts(c *gin.Context) {
	alerts, err := h.Customers.GetInactivityAlerts()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, alerts)
}

// GetCustomer returns one customer
func (h *Handlers) GetCustomer(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	customer, err := h.Customers.GetCustomer(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, customer)
}

// CreateCustomer registers a customer
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Customers.CreateCustomer(&customer); err != nil {
		fail(c, err)
		return
	}
	created(c, customer)
}

// UpdateCustomer updates a customer
func (h *Handlers) UpdateCustomer(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		badRequest(c, err)
		return
	}
	customer.ID = id
	if err := h.Customers.UpdateCustomer(&customer); err != nil {
		fail(c, err)
		return
	}
	ok(c, customer)
}

// DeleteCustomer removes a customer
func (h *Handlers) DeleteCustomer(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Customers.DeleteCustomer(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// ListResellers returns all resellers
func (h *Handlers) ListResellers(c *gin.Context) {
	resellers, err := h.Resellers.GetAllResellers()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, resellers)
}

// GetReseller returns one reseller
func (h *Handlers) GetReseller(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	reseller, err := h.Resellers.GetReseller(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, reseller)
}

// CreateReseller registers a reseller
func (h *Handlers) CreateReseller(c *gin.Context) {
	var reseller models.Reseller
	if err := c.ShouldBindJSON(&reseller); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Resellers.CreateReseller(&reseller); err != nil {
		fail(c, err)
		return
	}
	created(c, reseller)
}

// UpdateReseller updates a reseller
func (h *Handlers) UpdateReseller(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var reseller models.Reseller
	if err := c.ShouldBindJSON(&reseller); err != nil {
		badRequest(c, err)
		return
	}
	reseller.ID = id
	if err := h.Resellers.UpdateReseller(&reseller); err != nil {
		fail(c, err)
		return
	}
	ok(c, reseller)
}

// DeleteReseller removes a reseller without sales
func (h *Handlers) DeleteReseller(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Resellers.DeleteReseller(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// ListExpenses returns all expenses
func (h *Handlers) ListExpenses(c *gin.Context) {
	expenses, err := h.Expenses.GetAllExpenses()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, expenses)
}

// CreateExpense registers an expense
func (h *Handlers) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Expenses.CreateExpense(&expense); err != nil {
		fail(c, err)
		return
	}
	created(c, expense)
}

// UpdateExpense updates an expense
func (h *Handlers) UpdateExpense(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		badRequest(c, err)
		return
	}
	expense.ID = id
	if err := h.Expenses.UpdateExpense(&expense); err != nil {
		fail(c, err)
		return
	}
	ok(c, expense)
}

// DeleteExpense removes an expense
func (h *Handlers) DeleteExpense(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Expenses.DeleteExpense(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// PayExpense marks an expense paid
func (h *Handlers) PayExpense(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Expenses.MarkPaid(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// GetDashboard returns the dashboard metrics roll-up
func (h *Handlers) GetDashboard(c *gin.Context) {
	metrics, err := h.Dashboard.GetMetrics()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, metrics)
}
