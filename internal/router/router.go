package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBank(c *ginext.Context)
	OpenAccount(c *ginext.Context)
	GetAccount(c *ginext.Context)
	Deposit(c *ginext.Context)
	Withdraw(c *ginext.Context)
	ProcessPayment(c *ginext.Context)
	CancelPayment(c *ginext.Context)
	GetOperation(c *ginext.Context)
	DeleteBank(c *ginext.Context)

	CreateHotel(c *ginext.Context)
	AddRoom(c *ginext.Context)
	BookRoom(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	DeleteHotel(c *ginext.Context)

	CreateRentACar(c *ginext.Context)
	AddVehicle(c *ginext.Context)
	RentVehicle(c *ginext.Context)
	CancelRenting(c *ginext.Context)
	GetRenting(c *ginext.Context)
	DeleteRentACar(c *ginext.Context)

	CreateProvider(c *ginext.Context)
	NewActivity(c *ginext.Context)
	NewOffer(c *ginext.Context)
	ReserveActivity(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	DeleteProvider(c *ginext.Context)

	RegisterTaxPayer(c *ginext.Context)
	NewItemType(c *ginext.Context)
	SubmitInvoice(c *ginext.Context)
	CancelInvoice(c *ginext.Context)
	GetInvoice(c *ginext.Context)

	PlanTrip(c *ginext.Context)
	GetTrip(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Banks
		api.POST("/banks", h.CreateBank)
		api.DELETE("/banks/:code", h.DeleteBank)
		api.POST("/banks/:code/accounts", h.OpenAccount)
		api.GET("/accounts/:iban", h.GetAccount)
		api.POST("/accounts/:iban/deposits", h.Deposit)
		api.POST("/accounts/:iban/withdrawals", h.Withdraw)
		api.POST("/payments", h.ProcessPayment)
		api.POST("/payments/:reference/cancel", h.CancelPayment)
		api.GET("/operations/:reference", h.GetOperation)

		// Hotels
		api.POST("/hotels", h.CreateHotel)
		api.DELETE("/hotels/:code", h.DeleteHotel)
		api.POST("/hotels/:code/rooms", h.AddRoom)
		api.POST("/bookings", h.BookRoom)
		api.POST("/bookings/:reference/cancel", h.CancelBooking)
		api.GET("/bookings/:reference", h.GetBooking)

		// Rent-a-cars
		api.POST("/rentacars", h.CreateRentACar)
		api.DELETE("/rentacars/:code", h.DeleteRentACar)
		api.POST("/rentacars/:code/vehicles", h.AddVehicle)
		api.POST("/rentings", h.RentVehicle)
		api.POST("/rentings/:reference/cancel", h.CancelRenting)
		api.GET("/rentings/:reference", h.GetRenting)

		// Activity providers
		api.POST("/providers", h.CreateProvider)
		api.DELETE("/providers/:code", h.DeleteProvider)
		api.POST("/providers/:code/activities", h.NewActivity)
		api.POST("/activities/:code/offers", h.NewOffer)
		api.POST("/reservations", h.ReserveActivity)
		api.POST("/reservations/:reference/cancel", h.CancelReservation)
		api.GET("/reservations/:reference", h.GetReservation)

		// Tax authority
		api.POST("/taxpayers", h.RegisterTaxPayer)
		api.POST("/itemtypes", h.NewItemType)
		api.POST("/invoices", h.SubmitInvoice)
		api.POST("/invoices/:reference/cancel", h.CancelInvoice)
		api.GET("/invoices/:reference", h.GetInvoice)

		// Trips
		api.POST("/trips", h.PlanTrip)
		api.GET("/trips/:id", h.GetTrip)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
