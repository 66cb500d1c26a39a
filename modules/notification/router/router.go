package router

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/middleware"
	"gotix-api/modules/notification/controller"
)

type NotificationRouter struct {
	Controller *controller.NotificationController
}

func NewNotificationRouter(ctrl *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{Controller: ctrl}
}

func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	notif := e.Group("/api/v1/notifications", mw.AuthMiddleware())
	notif.GET("", r.Controller.List)
	notif.GET("/unread-count", r.Controller.UnreadCount)
	notif.POST("/read", r.Controller.MarkAsRead)
	notif.POST("/read-all", r.Controller.MarkAllAsRead)
}
