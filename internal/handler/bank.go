package handler

import (
	"net/http"

	"github.com/afonsob/travelbooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBank(c *ginext.Context) {
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.banks.Create(req.Name, req.Code); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CodeResponse{Code: req.Code})
}

func (h *Handler) OpenAccount(c *ginext.Context) {
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	iban, err := h.banks.OpenAccount(c.Param("code"), req.Holder)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"iban": iban})
}

func (h *Handler) GetAccount(c *ginext.Context) {
	account, err := h.banks.Account(c.Param("iban"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *Handler) Deposit(c *ginext.Context) {
	var req dto.MoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ref, err := h.banks.Deposit(c.Param("iban"), req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReferenceResponse{Reference: ref})
}

func (h *Handler) Withdraw(c *ginext.Context) {
	var req dto.MoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ref, err := h.banks.Withdraw(c.Param("iban"), req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReferenceResponse{Reference: ref})
}

func (h *Handler) ProcessPayment(c *ginext.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ref, err := h.banks.ProcessPayment(req.IBAN, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReferenceResponse{Reference: ref})
}

func (h *Handler) CancelPayment(c *ginext.Context) {
	token, err := h.banks.CancelPayment(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancellationResponse{CancellationToken: token})
}

func (h *Handler) GetOperation(c *ginext.Context) {
	op, err := h.banks.Operation(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOperationResponse(op))
}

func (h *Handler) DeleteBank(c *ginext.Context) {
	if err := h.banks.Delete(c.Param("code")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}
