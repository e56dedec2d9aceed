package handler

import (
	"net/http"

	"github.com/afonsob/travelbooker/internal/handler/dto"
	"github.com/afonsob/travelbooker/internal/trip"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) PlanTrip(c *ginext.Context) {
	var req dto.PlanTripRequest
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

	planned, err := h.trips.Plan(c.Request.Context(), trip.Input{
		Begin:     begin,
		End:       end,
		Age:       req.Age,
		BuyerNIF:  req.BuyerNIF,
		BuyerIBAN: req.BuyerIBAN,
		WithCar:   req.WithCar,
		License:   req.License,
	})
	if err != nil {
		// a compensated trip is still a recorded outcome; the client gets
		// the trip with the step that failed
		if planned != nil {
			c.Set("error", err.Error())
			c.JSON(http.StatusConflict, dto.ToTripResponse(planned))
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(planned))
}

func (h *Handler) GetTrip(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip id"})
		return
	}

	planned, err := h.trips.Trip(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(&planned))
}
