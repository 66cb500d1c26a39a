package controller

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gotix-api/core/constants"
	"gotix-api/core/controller"
	"gotix-api/core/errors"
	"gotix-api/core/logger"
	"gotix-api/core/storage"
	"gotix-api/core/utils"
	"gotix-api/modules/event/dto"
	"gotix-api/modules/event/service"
)

const dateLayout = "2006-01-02"

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
	Uploader     *storage.S3Uploader
}

func NewEventController(eventSvc service.EventServiceInterface, uploader *storage.S3Uploader) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   eventSvc,
		Uploader:       uploader,
	}
}

// List handles GET /api/v1/events, the discovery query.
// Query params: page (default 1), category ("all" = no filter), day
// (pipe-delimited day tokens), customStartDate/customEndDate (YYYY-MM-DD).
func (ec *EventController) List(c echo.Context) error {
	q := &dto.EventQuery{
		Category:       c.QueryParam("category"),
		RawDay:         c.QueryParam("day"),
		RawCustomStart: c.QueryParam("customStartDate"),
		RawCustomEnd:   c.QueryParam("customEndDate"),
	}

	q.Page = utils.ToNumberWithDefault(c.QueryParam("page"), 1)
	if q.Page < 1 {
		q.Page = 1
	}

	if q.RawDay != "" {
		for _, token := range strings.Split(q.RawDay, "|") {
			if token = strings.TrimSpace(token); token != "" {
				q.DayTokens = append(q.DayTokens, token)
			}
		}
	}

	if q.RawCustomStart != "" {
		start, err := time.Parse(dateLayout, q.RawCustomStart)
		if err != nil {
			return ec.BadRequest(errors.ErrInvalidInput, "customStartDate must be YYYY-MM-DD",
				controller.NewValidationError("customStartDate", "invalid date format"))
		}
		q.CustomStart = &start
	}
	if q.RawCustomEnd != "" {
		end, err := time.Parse(dateLayout, q.RawCustomEnd)
		if err != nil {
			return ec.BadRequest(errors.ErrInvalidInput, "customEndDate must be YYYY-MM-DD",
				controller.NewValidationError("customEndDate", "invalid date format"))
		}
		q.CustomEnd = &end
	}

	res, appErr := ec.EventService.List(c.Request().Context(), q)
	if appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}
	return ec.SuccessResponse(c, res, "events")
}

func (ec *EventController) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ec.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}
	event, appErr := ec.EventService.GetByID(c.Request().Context(), id)
	if appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}
	return ec.SuccessResponse(c, event, "event")
}

func (ec *EventController) Create(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return ec.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, upErr := ec.uploadImage(c, file)
		if upErr != nil {
			return ec.ErrorResponse(c, upErr)
		}
		req.ImageURL = url
	}

	event, appErr := ec.EventService.Create(c.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}
	return ec.SuccessResponse(c, event, "event created")
}

func (ec *EventController) Update(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ec.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return ec.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	if file, fErr := c.FormFile("image"); fErr == nil && file != nil {
		url, upErr := ec.uploadImage(c, file)
		if upErr != nil {
			return ec.ErrorResponse(c, upErr)
		}
		req.ImageURL = &url
	}

	event, appErr := ec.EventService.Update(c.Request().Context(), claims.UserID, id, &req)
	if appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}
	return ec.SuccessResponse(c, event, "event updated")
}

func (ec *EventController) Delete(c echo.Context) error {
	claims, appErr := currentClaims(c)
	if appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ec.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}
	if appErr := ec.EventService.Delete(c.Request().Context(), claims.UserID, id); appErr != nil {
		return ec.ErrorResponse(c, appErr)
	}
	return ec.SuccessResponse(c, nil, "event deleted")
}

func (ec *EventController) uploadImage(c echo.Context, file *multipart.FileHeader) (string, *errors.AppError) {
	src, err := file.Open()
	if err != nil {
		return "", errors.NewAppError(errors.ErrInvalidInput, "failed to read uploaded image", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.NewAppError(errors.ErrInvalidInput, "uploaded file must be an image", nil)
	}

	key := fmt.Sprintf("events/%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	url, err := ec.Uploader.Upload(c.Request().Context(), key, contentType, src)
	if err != nil {
		logger.Error("EventController:uploadImage:Error", "key", key, "error", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store image", err)
	}
	return url, nil
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
