package handler

import (
	"dashboard/config"
	"dashboard/internal/domain/query"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NewPager builds the pager shared by all list endpoints.
func NewPager(cfg *config.Config) query.Pager {
	return query.NewPager(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)
}

// listQuery reads filters and the page from the query string. The page and
// limit keys are ignored by every filter set.
func listQuery(c echo.Context, pager query.Pager) usecase.ListQuery {
	values := c.QueryParams()

	return usecase.ListQuery{
		Filters: values,
		Page:    pager.FromValues(values),
	}
}
