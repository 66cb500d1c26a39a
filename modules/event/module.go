package event

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/cache"
	"gotix-api/core/database"
	"gotix-api/core/middleware"
	"gotix-api/core/storage"
	authRepository "gotix-api/modules/auth/repository"
	authService "gotix-api/modules/auth/service"
	"gotix-api/modules/event/controller"
	"gotix-api/modules/event/repository"
	"gotix-api/modules/event/router"
	"gotix-api/modules/event/service"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache, uploader *storage.S3Uploader) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc, uploader)

	authRepo := authRepository.NewUserRepository(db)
	authSvc := authService.NewAuthService(authRepo, c)
	mw := middleware.NewMiddleware(authSvc)

	router.NewEventRouter(ctrl).Setup(e, mw)
}
