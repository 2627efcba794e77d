package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	MoveBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, identity ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", identity)
	{
		api.GET("/booking", h.GetBooking)
		api.POST("/booking", h.CreateBooking)
		api.PUT("/booking/:bookingId", h.MoveBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
