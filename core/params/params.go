package params

import (
	"github.com/labstack/echo/v4"

	"gotix-api/core/constants"
	"gotix-api/core/utils"
)

// QueryParams are the common paging parameters of list endpoints.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromEcho reads page/page_size from the query string, clamping to sane values.
func FromEcho(c echo.Context) QueryParams {
	page := utils.ToNumberWithDefault(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	size := utils.ToNumberWithDefault(c.QueryParam("page_size"), constants.DefaultPageSize)
	if size < 1 || size > 100 {
		size = constants.DefaultPageSize
	}
	return QueryParams{PageNumber: page, PageSize: size}
}
