package handler

import (
	"net/http"

	"github.com/afonsob/travelbooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateProvider(c *ginext.Context) {
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.activities.Create(req.Code, req.Name, req.NIF, req.IBAN); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CodeResponse{Code: req.Code})
}

func (h *Handler) NewActivity(c *ginext.Context) {
	var req dto.NewActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	code, err := h.activities.NewActivity(c.Param("code"), req.Name, req.Capacity, req.MinAge, req.MaxAge)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CodeResponse{Code: code})
}

func (h *Handler) NewOffer(c *ginext.Context) {
	var req dto.NewOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	begin, ok := h.parseDate(c, "begin", req.Begin)
	if !ok {
		return
	}
	end, ok := h.parseDate(c, "end", req.End)
	if !ok {
		return
	}

	code, err := h.activities.NewOffer(c.Param("code"), begin, end, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CodeResponse{Code: code})
}

func (h *Handler) ReserveActivity(c *ginext.Context) {
	var req dto.ReserveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	begin, ok := h.parseDate(c, "begin", req.Begin)
	if !ok {
		return
	}
	end, ok := h.parseDate(c, "end", req.End)
	if !ok {
		return
	}

	ref, err := h.activities.Reserve(req.Age, begin, end, req.BuyerNIF)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReferenceResponse{Reference: ref})
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	token, err := h.activities.CancelReservation(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancellationResponse{CancellationToken: token})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	reservation, err := h.activities.Reservation(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) DeleteProvider(c *ginext.Context) {
	if err := h.activities.Delete(c.Param("code")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}
