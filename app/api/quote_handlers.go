package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"DoceGestor/app/models"
)

// ListQuotes returns all quotes
func (h *Handlers) ListQuotes(c *gin.Context) {
	quotes, err := h.Quotes.GetAllQuotes()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, quotes)
}

// GetQuote returns one quote
func (h *Handlers) GetQuote(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	quote, err := h.Quotes.GetQuote(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, quote)
}

// CreateQuote registers an orçamento
func (h *Handlers) CreateQuote(c *gin.Context) {
	var quote models.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Quotes.CreateQuote(&quote); err != nil {
		fail(c, err)
		return
	}
	created(c, quote)
}

// UpdateQuote updates quote header fields
func (h *Handlers) UpdateQuote(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var quote models.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		badRequest(c, err)
		return
	}
	quote.ID = id
	if err := h.Quotes.UpdateQuote(&quote); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// DeleteQuote removes a quote
func (h *Handlers) DeleteQuote(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Quotes.DeleteQuote(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// ApproveQuote approves a pending quote and records the matching sale
func (h *Handlers) ApproveQuote(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	sale, err := h.Quotes.ApproveQuote(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, sale)
}

// RejectQuote rejects a pending quote
func (h *Handlers) RejectQuote(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Quotes.RejectQuote(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// QuoteQRCode streams a PNG QR code summarizing the quote
func (h *Handlers) QuoteQRCode(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	png, err := h.Quotes.QuoteQRCode(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ListScheduleWeek lists the production schedule for the week starting
// at ?start=YYYY-MM-DD (default: today)
func (h *Handlers) ListScheduleWeek(c *gin.Context) {
	start := time.Now()
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		start = parsed
	}
	items, err := h.Schedule.GetWeek(start)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, items)
}

// CreateScheduleItem schedules a production run
func (h *Handlers) CreateScheduleItem(c *gin.Context) {
	var item models.ScheduleItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Schedule.CreateItem(&item); err != nil {
		fail(c, err)
		return
	}
	created(c, item)
}

// UpdateScheduleItem updates a schedule item
func (h *Handlers) UpdateScheduleItem(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var item models.ScheduleItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	item.ID = id
	if err := h.Schedule.UpdateItem(&item); err != nil {
		fail(c, err)
		return
	}
	ok(c, item)
}

// DeleteScheduleItem removes a schedule item
func (h *Handlers) DeleteScheduleItem(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Schedule.DeleteItem(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// StartScheduleItem flips a pending item to em_producao
func (h *Handlers) StartScheduleItem(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	if err := h.Schedule.StartItem(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// CompleteScheduleItem runs the scheduled production and closes the item
func (h *Handlers) CompleteScheduleItem(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	event, err := h.Schedule.CompleteItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, event)
}
