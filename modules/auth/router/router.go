package router

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/middleware"
	"gotix-api/modules/auth/controller"
)

type AuthRouter struct {
	Controller *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{Controller: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", r.Controller.Register)
	auth.POST("/login", r.Controller.Login)

	priv := auth.Group("", mw.AuthMiddleware())
	priv.POST("/logout", r.Controller.Logout)
	priv.GET("/me", r.Controller.Me)
}
