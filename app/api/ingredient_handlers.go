package api

import (
	"github.com/gin-gonic/gin"

	"DoceGestor/app/models"
)

// ListIngredients returns all ingredients
func (h *Handlers) ListIngredients(c *gin.Context) {
	ingredients, err := h.Ingredients.GetAllIngredients()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, ingredients)
}

// GetIngredient returns one ingredient
func (h *Handlers) GetIngredient(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	ingredient, err := h.Ingredients.GetIngredient(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, ingredient)
}

// CreateIngredient registers a new ingredient
func (h *Handlers) CreateIngredient(c *gin.Context) {
	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Ingredients.CreateIngredient(&ingredient); err != nil {
		fail(c, err)
		return
	}
	created(c, ingredient)
}

type updateIngredientRequest struct {
	models.Ingredient
	NewLot bool `json:"new_lot"`
}

// UpdateIngredient updates an ingredient; new_lot records a purchase lot
func (h *Handlers) UpdateIngredient(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req updateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.Ingredient.ID = id
	if err := h.Ingredients.UpdateIngredient(&req.Ingredient, req.NewLot); err != nil {
		fail(c, err)
		return
	}
	ok(c, req.Ingredient)
}

// DeleteIngredient removes an unreferenced ingredient
func (h *Handlers) DeleteIngredient(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Ingredients.DeleteIngredient(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

type restockRequest struct {
	Quantity float64 `json:"quantity"`
	Reason   string  `json:"reason"`
}

// RestockIngredient increments an ingredient's stock
func (h *Handlers) RestockIngredient(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Ingredients.RestockIngredient(id, req.Quantity, req.Reason); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// ListIngredientMovements returns the stock movement history
func (h *Handlers) ListIngredientMovements(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	movements, err := h.Ingredients.GetIngredientMovements(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, movements)
}

// ListIngredientLots returns the purchase lots
func (h *Handlers) ListIngredientLots(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	lots, err := h.Ingredients.GetIngredientLots(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, lots)
}
