package handler

import (
	"net/http"

	"github.com/afonsob/travelbooker/internal/handler/dto"
	"github.com/afonsob/travelbooker/internal/tax"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) RegisterTaxPayer(c *ginext.Context) {
	var req dto.RegisterTaxPayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.taxes.RegisterTaxPayer(tax.PayerKind(req.Kind), req.NIF, req.Name); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "registered"})
}

func (h *Handler) NewItemType(c *ginext.Context) {
	var req dto.NewItemTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.taxes.NewItemType(req.Name, req.Rate); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "created"})
}

func (h *Handler) SubmitInvoice(c *ginext.Context) {
	var req dto.SubmitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := h.parseDate(c, "date", req.Date)
	if !ok {
		return
	}

	ref, err := h.taxes.SubmitInvoice(req.SellerNIF, req.BuyerNIF, req.ItemType, req.Value, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReferenceResponse{Reference: ref})
}

func (h *Handler) CancelInvoice(c *ginext.Context) {
	token, err := h.taxes.CancelInvoice(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancellationResponse{CancellationToken: token})
}

func (h *Handler) GetInvoice(c *ginext.Context) {
	invoice, err := h.taxes.Invoice(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
