package booking

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/cache"
	"gotix-api/core/database"
	"gotix-api/core/middleware"
	"gotix-api/core/queue"
	authRepository "gotix-api/modules/auth/repository"
	authService "gotix-api/modules/auth/service"
	"gotix-api/modules/booking/controller"
	"gotix-api/modules/booking/repository"
	"gotix-api/modules/booking/router"
	"gotix-api/modules/booking/service"
	eventRepository "gotix-api/modules/event/repository"
)

func Init(e *echo.Echo, db database.Database, c cache.Cache, enqueuer queue.Enqueuer) *service.BookingService {
	repo := repository.NewBookingRepository(db)
	eventRepo := eventRepository.NewEventRepository(db)
	svc := service.NewBookingService(repo, eventRepo, enqueuer)
	ctrl := controller.NewBookingController(svc)

	authRepo := authRepository.NewUserRepository(db)
	authSvc := authService.NewAuthService(authRepo, c)
	mw := middleware.NewMiddleware(authSvc)

	router.NewBookingRouter(ctrl).Setup(e, mw)
	return svc
}
