package api

import (
	"github.com/gin-gonic/gin"

	"DoceGestor/app/models"
)

// ListRecipes returns all recipes with costed lines
func (h *Handlers) ListRecipes(c *gin.Context) {
	recipes, err := h.Recipes.GetAllRecipes()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, recipes)
}

// GetRecipe returns one recipe
func (h *Handlers) GetRecipe(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	recipe, err := h.Recipes.GetRecipe(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, recipe)
}

// CreateRecipe creates a recipe, costing it on the way in
func (h *Handlers) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Recipes.CreateRecipe(&recipe); err != nil {
		fail(c, err)
		return
	}
	created(c, recipe)
}

// UpdateRecipe updates a recipe, replacing its ingredient list
func (h *Handlers) UpdateRecipe(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		badRequest(c, err)
		return
	}
	recipe.ID = id
	if err := h.Recipes.UpdateRecipe(&recipe); err != nil {
		fail(c, err)
		return
	}
	ok(c, recipe)
}

// DeleteRecipe removes a recipe with no backing products
func (h *Handlers) DeleteRecipe(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Recipes.DeleteRecipe(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

type produceRequest struct {
	Batches int `json:"batches"`
}

// ProduceRecipe runs the production executor for a recipe
func (h *Handlers) ProduceRecipe(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req produceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	event, err := h.Recipes.Produce(id, req.Batches)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, event)
}

// ListRecipeProduction returns the production history of one recipe
func (h *Handlers) ListRecipeProduction(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	events, err := h.Recipes.GetProductionHistory(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, events)
}

// ListProduction returns the full production log
func (h *Handlers) ListProduction(c *gin.Context) {
	events, err := h.Recipes.GetProductionHistory(0)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, events)
}

// ListProducts returns all products
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Products.GetAllProducts()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, products)
}

// ListActiveProducts returns only products available for sale
func (h *Handlers) ListActiveProducts(c *gin.Context) {
	products, err := h.Products.GetActiveProducts()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, products)
}

// ListLowStockProducts returns active products at or below minimum stock
func (h *Handlers) ListLowStockProducts(c *gin.Context) {
	products, err := h.Products.GetLowStockProducts()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, products)
}

// GetProduct returns one product
func (h *Handlers) GetProduct(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	product, err := h.Products.GetProduct(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, product)
}

// CreateProduct creates a product backed by a recipe
func (h *Handlers) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Products.CreateProduct(&product); err != nil {
		fail(c, err)
		return
	}
	created(c, product)
}

// UpdateProduct updates a product
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		badRequest(c, err)
		return
	}
	product.ID = id
	if err := h.Products.UpdateProduct(&product); err != nil {
		fail(c, err)
		return
	}
	ok(c, product)
}

// DeleteProduct soft deletes a product
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Products.DeleteProduct(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}
