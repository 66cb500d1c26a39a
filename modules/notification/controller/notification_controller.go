package controller

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/constants"
	"gotix-api/core/controller"
	"gotix-api/core/errors"
	"gotix-api/core/params"
	"gotix-api/core/utils"
	"gotix-api/modules/notification/dto"
	"gotix-api/modules/notification/service"
)

type NotificationController struct {
	controller.BaseController
	NotificationService *service.NotificationService
}

func NewNotificationController(notifSvc *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: notifSvc,
	}
}

func (n *NotificationController) List(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return n.ErrorResponse(c, appErr)
	}
	res, err := n.NotificationService.GetMyNotifications(c.Request().Context(), claims.UserID, params.FromEcho(c))
	if err != nil {
		return n.ErrorResponse(c, errors.NewAppError(errors.ErrInternalServer, "failed to load notifications", err))
	}
	return n.SuccessResponse(c, res, "notifications")
}

func (n *NotificationController) MarkAsRead(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return n.ErrorResponse(c, appErr)
	}
	var req dto.MarkAsReadRequest
	if err := c.Bind(&req); err != nil {
		return n.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if err := n.NotificationService.MarkAsRead(c.Request().Context(), claims.UserID, req.IDs); err != nil {
		return n.ErrorResponse(c, errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications read", err))
	}
	return n.SuccessResponse(c, nil, "marked read")
}

func (n *NotificationController) MarkAllAsRead(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return n.ErrorResponse(c, appErr)
	}
	if err := n.NotificationService.MarkAllAsRead(c.Request().Context(), claims.UserID); err != nil {
		return n.ErrorResponse(c, errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications read", err))
	}
	return n.SuccessResponse(c, nil, "marked all read")
}

func (n *NotificationController) UnreadCount(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return n.ErrorResponse(c, appErr)
	}
	count, err := n.NotificationService.CountUnread(c.Request().Context(), claims.UserID)
	if err != nil {
		return n.ErrorResponse(c, errors.NewAppError(errors.ErrInternalServer, "failed to count unread", err))
	}
	return n.SuccessResponse(c, map[string]int{"unread": count}, "unread count")
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
