package handler

import (
	"net/http"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/service"

	"github.com/gin-gonic/gin"
)

type KitsHandler struct{ kits service.KitService }

func NewKitsHandler(kits service.KitService) *KitsHandler {
	return &KitsHandler{kits: kits}
}

func (h *KitsHandler) List(c *gin.Context) {
	resp, err := h.kits.ListKits(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByCallType looks up the recommended kit for a call type. A call type
// with no kit is a normal outcome: 200 with found=false, never 404.
func (h *KitsHandler) GetByCallType(c *gin.Context) {
	callType := c.Query("call_type")
	if callType == "" {
		c.JSON(http.StatusBadRequest, apierror.New("call_type query parameter is required"))
		return
	}
	resp, err := h.kits.GetByCallType(c.Request.Context(), callType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
