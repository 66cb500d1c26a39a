package auth

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/cache"
	"gotix-api/core/database"
	"gotix-api/core/middleware"
	"gotix-api/modules/auth/controller"
	"gotix-api/modules/auth/repository"
	"gotix-api/modules/auth/router"
	"gotix-api/modules/auth/service"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	mw := middleware.NewMiddleware(svc)
	router.NewAuthRouter(ctrl).Setup(e, mw)
}
