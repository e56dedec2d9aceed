package handler

import (
	"net/http"

	"github.com/afonsob/travelbooker/internal/handler/dto"
	"github.com/afonsob/travelbooker/internal/hotel"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateHotel(c *ginext.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.hotels.Create(req.Code, req.Name, req.NIF, req.IBAN, req.PriceSingle, req.PriceDouble); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CodeResponse{Code: req.Code})
}

func (h *Handler) AddRoom(c *ginext.Context) {
	var req dto.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.hotels.AddRoom(c.Param("code"), req.Number, hotel.RoomType(req.Type)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "created"})
}

func (h *Handler) BookRoom(c *ginext.Context) {
	var req dto.BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	arrival, ok := h.parseDate(c, "arrival", req.Arrival)
	if !ok {
		return
	}
	departure, ok := h.parseDate(c, "departure", req.Departure)
	if !ok {
		return
	}

	ref, err := h.hotels.Book(hotel.RoomType(req.Type), arrival, departure, req.BuyerNIF)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReferenceResponse{Reference: ref})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	token, err := h.hotels.CancelBooking(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancellationResponse{CancellationToken: token})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.hotels.Booking(c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteHotel(c *ginext.Context) {
	if err := h.hotels.Delete(c.Param("code")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}
