package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CheckAvailability(c *ginext.Context)
	CheckPrice(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	AmendBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/check-availability", h.CheckAvailability)
		api.POST("/check-price", h.CheckPrice)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PUT("/bookings/:id", h.AmendBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
