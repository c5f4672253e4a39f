package handler

import (
	"net/http"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/service"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct{ stock service.StockService }

func NewUsageHandler(stock service.StockService) *UsageHandler {
	return &UsageHandler{stock: stock}
}

// Record appends one usage entry and deducts the same quantity from stock.
// Insufficient stock is a 409 and leaves both the ledger and the item
// untouched.
func (h *UsageHandler) Record(c *gin.Context) {
	var req dto.RecordUsageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.stock.Consume(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsageHandler) List(c *gin.Context) {
	var filter dto.UsageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("call_id and item_id must be UUIDs"))
		return
	}
	resp, err := h.stock.ListUsage(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
