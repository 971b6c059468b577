package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"DoceGestor/app/services"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Handlers groups the service dependencies behind the HTTP surface
type Handlers struct {
	Ingredients *services.IngredientService
	Recipes     *services.RecipeService
	Products    *services.ProductService
	Sales       *services.SalesService
	Customers   *services.CustomerService
	Resellers   *services.ResellerService
	Expenses    *services.ExpenseService
	Quotes      *services.QuoteService
	Schedule    *services.ScheduleService
	Dashboard   *services.DashboardService
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Error: err.Error()})
}

// fail maps service errors onto HTTP status codes: validation issues
// are 400, stock shortages 422 with the structured shortage list,
// missing records 404, anything else 500.
func fail(c *gin.Context, err error) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		badRequest(c, validation)
		return
	}

	var shortage *services.InsufficientStockError
	if errors.As(err, &shortage) {
		c.JSON(http.StatusUnprocessableEntity, APIResponse{
			Success: false,
			Error:   shortage.Error(),
			Data:    gin.H{"shortages": shortage.Shortages},
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, APIResponse{Success: false, Error: "registro não encontrado"})
		return
	}

	c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Error: err.Error()})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, errors.New("id inválido"))
		return 0, false
	}
	return uint(id), true
}
