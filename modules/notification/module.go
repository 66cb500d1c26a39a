package notification

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/cache"
	"gotix-api/core/database"
	"gotix-api/core/middleware"
	authRepository "gotix-api/modules/auth/repository"
	authService "gotix-api/modules/auth/service"
	"gotix-api/modules/notification/controller"
	"gotix-api/modules/notification/repository"
	"gotix-api/modules/notification/router"
	"gotix-api/modules/notification/service"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	authRepo := authRepository.NewUserRepository(db)
	authSvc := authService.NewAuthService(authRepo, c)
	mw := middleware.NewMiddleware(authSvc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)
	return svc
}
