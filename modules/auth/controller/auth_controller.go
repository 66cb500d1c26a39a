package controller

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/constants"
	"gotix-api/core/controller"
	"gotix-api/core/errors"
	"gotix-api/core/utils"
	"gotix-api/modules/auth/dto"
	"gotix-api/modules/auth/service"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authSvc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authSvc,
	}
}

func (a *AuthController) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return a.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	user, appErr := a.AuthService.Register(c.Request().Context(), &req)
	if appErr != nil {
		return a.ErrorResponse(c, appErr)
	}
	return a.SuccessResponse(c, user, "account created")
}

func (a *AuthController) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return a.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	res, appErr := a.AuthService.Login(c.Request().Context(), &req)
	if appErr != nil {
		return a.ErrorResponse(c, appErr)
	}
	return a.SuccessResponse(c, res, "logged in")
}

func (a *AuthController) Logout(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return a.ErrorResponse(c, err)
	}
	if appErr := a.AuthService.Logout(c.Request().Context(), claims.UserID); appErr != nil {
		return a.ErrorResponse(c, appErr)
	}
	return a.SuccessResponse(c, nil, "logged out")
}

func (a *AuthController) Me(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return a.ErrorResponse(c, err)
	}
	user, appErr := a.AuthService.Me(c.Request().Context(), claims.UserID)
	if appErr != nil {
		return a.ErrorResponse(c, appErr)
	}
	return a.SuccessResponse(c, user, "profile")
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
