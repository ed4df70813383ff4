// Package handler exposes the quote builder over HTTP.
package handler

import (
	"net/http"

	"pxplabs_backend/internal/pdf"
	"pxplabs_backend/internal/quotes/service"
	"pxplabs_backend/internal/quotes/transport"
	"pxplabs_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles quote builder requests.
type Handler struct {
	service *service.QuoteService
}

// NewHandler creates a quotes handler.
func NewHandler(svc *service.QuoteService) *Handler {
	return &Handler{service: svc}
}

// Preview handles POST /quotes/preview.
func (h *Handler) Preview(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	quote, err := h.service.Preview(req.ServiceIDs)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toPreviewResponse(quote))
}

// Message handles POST /quotes/message.
func (h *Handler) Message(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	message, link, err := h.service.BuildMessage(toInquiry(req), req.ServiceIDs)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.MessageResponse{Message: message, WhatsAppURL: link})
}

// Document handles POST /quotes/document and streams the PDF back.
func (h *Handler) Document(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	doc, err := h.service.GenerateDocument(toInquiry(req), req.ServiceIDs)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func toInquiry(req transport.QuoteRequest) service.Inquiry {
	return service.Inquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Budget:  req.Budget,
		Details: req.Details,
	}
}

func toPreviewResponse(quote service.Quote) transport.PreviewResponse {
	resp := transport.PreviewResponse{
		Lines:  make([]transport.QuoteLineResponse, 0, len(quote.Services)),
		Custom: quote.Custom,
	}

	for _, svc := range quote.Services {
		line := transport.QuoteLineResponse{ServiceID: svc.ID, Label: svc.Label}
		if !quote.Custom {
			price := svc.BasePrice
			line.Price = &price
		}
		resp.Lines = append(resp.Lines, line)
	}

	if !quote.Custom {
		resp.Subtotal = &quote.Subtotal
		resp.DiscountBps = &quote.DiscountBps
		resp.Discount = &quote.Discount
		resp.Total = &quote.Total
	}

	return resp
}
