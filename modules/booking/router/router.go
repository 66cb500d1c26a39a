package router

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/middleware"
	"gotix-api/modules/booking/controller"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	bookings := e.Group("/api/v1/bookings", mw.AuthMiddleware())
	bookings.POST("", r.Controller.Create)
	bookings.GET("", r.Controller.ListMine)
	bookings.DELETE("/:id", r.Controller.Cancel)
}
