package handler

import (
	"net/http"

	"github.com/afonsob/travelbooker/internal/car"
	"github.com/afonsob/travelbooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateRentACar(c *ginext.Context) {
	var req dto.CreateRentACarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	code, err := h.rentacars.Create(req.Name, req.NIF, req.IBAN)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CodeResponse{Code: code})
}

func (h *Handler) AddVehicle(c *ginext.Context) {
	var req dto.AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.rentacars.AddVehicle(c.Param("code"), car.Kind(req.Kind), req.Plate, req.PricePerDay); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "created"})
}

func (h *Handler) RentVehicle(c *ginext.Context) {
	var req dto.RentVehicleRequest
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

	ref, err := h.rentacars.Rent(car.Kind(req.Kind), req.License, req.BuyerNIF, req.BuyerIBAN, begin, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReferenceResponse{Reference: ref})
}

func (h *Handler) CancelRenting(c *ginext.Context) {
	token, err := h.rentacars.CancelRenting(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancellationResponse{CancellationToken: token})
}

func (h *Handler) GetRenting(c *ginext.Context) {
	renting, err := h.rentacars.Renting(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRentingResponse(renting))
}

func (h *Handler) DeleteRentACar(c *ginext.Context) {
	if err := h.rentacars.Delete(c.Param("code")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}
