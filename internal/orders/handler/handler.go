// Package handler exposes order submission over HTTP.
package handler

import (
	"net/http"

	"pxplabs_backend/internal/orders/service"
	"pxplabs_backend/internal/orders/transport"
	"pxplabs_backend/platform/httpkit"
	"pxplabs_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles order requests.
type Handler struct {
	service *service.OrderService
	val     *validator.Validator
}

// NewHandler creates an orders handler.
func NewHandler(svc *service.OrderService, val *validator.Validator) *Handler {
	return &Handler{service: svc, val: val}
}

// Submit handles POST /orders.
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "request exceeds field limits", nil)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), service.SubmitParams{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		ServiceIDs: req.ServiceIDs,
		Budget:     req.Budget,
		Details:    req.Details,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.SubmitOrderResponse{
		OrderID:     result.Order.ID.String(),
		Status:      result.Order.Status,
		CreatedAt:   result.Order.CreatedAt,
		Message:     result.Message,
		WhatsAppURL: result.WhatsAppURL,
	})
}
