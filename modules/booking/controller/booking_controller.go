package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gotix-api/core/constants"
	"gotix-api/core/controller"
	"gotix-api/core/errors"
	"gotix-api/core/params"
	"gotix-api/core/utils"
	"gotix-api/modules/booking/dto"
	"gotix-api/modules/booking/service"
)

type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

func NewBookingController(bookingSvc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: bookingSvc,
	}
}

func (b *BookingController) Create(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return b.ErrorResponse(c, appErr)
	}
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return b.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	booking, appErr := b.BookingService.Create(c.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return b.ErrorResponse(c, appErr)
	}
	return b.SuccessResponse(c, booking, "booking confirmed")
}

func (b *BookingController) ListMine(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return b.ErrorResponse(c, appErr)
	}
	res, appErr := b.BookingService.ListMine(c.Request().Context(), claims.UserID, params.FromEcho(c))
	if appErr != nil {
		return b.ErrorResponse(c, appErr)
	}
	return b.SuccessResponse(c, res, "bookings")
}

func (b *BookingController) Cancel(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return b.ErrorResponse(c, appErr)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return b.BadRequest(errors.ErrInvalidInput, "invalid booking id")
	}
	if appErr := b.BookingService.Cancel(c.Request().Context(), claims.UserID, id); appErr != nil {
		return b.ErrorResponse(c, appErr)
	}
	return b.SuccessResponse(c, nil, "booking cancelled")
}

func currentClaims(c echo.Context) (*utils.TokenClaims, *errors.AppError) {
	tokenData := c.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user not authenticated", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token data", nil)
	}
	return claims, nil
}
