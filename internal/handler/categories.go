package handler

import (
	"net/http"

	"github.com/gobro228/ambulance-site/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct{ catalog service.CatalogService }

func NewCategoriesHandler(catalog service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

func (h *CategoriesHandler) List(c *gin.Context) {
	resp, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
