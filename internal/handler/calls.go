package handler

import (
	"net/http"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CallsHandler struct{ calls service.CallService }

func NewCallsHandler(calls service.CallService) *CallsHandler {
	return &CallsHandler{calls: calls}
}

func (h *CallsHandler) Create(c *gin.Context) {
	var req dto.CreateCallRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.calls.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CallsHandler) List(c *gin.Context) {
	resp, err := h.calls.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CallsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid call id"))
		return
	}
	resp, err := h.calls.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CallsHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid call id"))
		return
	}
	var req dto.UpdateCallStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.calls.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CallsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid call id"))
		return
	}
	if err := h.calls.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
