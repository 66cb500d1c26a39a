package router

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/middleware"
	"gotix-api/modules/event/controller"
)

type EventRouter struct {
	Controller *controller.EventController
}

func NewEventRouter(ctrl *controller.EventController) *EventRouter {
	return &EventRouter{Controller: ctrl}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Discovery and detail are public.
	v1.GET("/events", r.Controller.List)
	v1.GET("/events/:id", r.Controller.Get)

	priv := v1.Group("/events", mw.AuthMiddleware())
	priv.POST("", r.Controller.Create)
	priv.PUT("/:id", r.Controller.Update)
	priv.DELETE("/:id", r.Controller.Delete)
}
