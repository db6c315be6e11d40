package usecase

import (
	"net/url"

	"dashboard/internal/domain/query"
)

// ListQuery carries the raw filter parameters of a list request together
// with the already normalized page.
type ListQuery struct {
	Filters url.Values
	Page    query.PageRequest
}

// NewListQuery returns a query for the first page with the default limit.
func NewListQuery(filters url.Values) ListQuery {
	if filters == nil {
		filters = url.Values{}
	}

	return ListQuery{
		Filters: filters,
		Page:    query.DefaultPager.Parse("", ""),
	}
}
