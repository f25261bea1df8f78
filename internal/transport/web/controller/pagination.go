package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Paging holds the page size limits for keyset-paginated endpoints.
// Zero values fall back to package defaults.
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

func (p Paging) limits() (defaultLimit, maxLimit int) {
	defaultLimit, maxLimit = p.DefaultLimit, p.MaxLimit
	if defaultLimit <= 0 {
		defaultLimit = defaultPageSize
	}
	if maxLimit <= 0 {
		maxLimit = maxPageSize
	}
	return min(defaultLimit, maxLimit), maxLimit
}

// parsePageRequest reads cursor, direction and limit from the query string.
// A malformed cursor is treated as absent, so next starts from the top and prev is rejected.
func (p Paging) parsePageRequest(q url.Values) (domain.PageRequest, error) {
	defaultLimit, maxLimit := p.limits()

	direction, err := domain.ParseDirection(q.Get("direction"))
	if err != nil {
		return domain.PageRequest{}, err
	}

	limit := defaultLimit
	if q.Has("limit") {
		l, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if l > int64(maxLimit) {
			return domain.PageRequest{}, fmt.Errorf("limit [%d] exceeds maximum [%d]", l, maxLimit)
		}
		limit = int(l)
	}

	var cursor *domain.Cursor
	if c, ok := domain.ParseCursor(q.Get("cursor")); ok {
		cursor = &c
	}

	return domain.NewPageRequest(direction, limit, cursor)
}

// PageInfo describes the position of a page within its feed.
type PageInfo struct {
	HasNext     bool   `json:"has_next"`
	HasPrevious bool   `json:"has_previous"`
	StartCursor string `json:"start_cursor,omitempty"`
	EndCursor   string `json:"end_cursor,omitempty"`
}

type ConnectionResponse[T any] struct {
	Data     []T      `json:"data"`
	PageInfo PageInfo `json:"page_info"`
}

func newConnectionResponse[T domain.Node](page domain.PagedResult[T]) ConnectionResponse[T] {
	info := PageInfo{
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}
	if start, ok := page.StartCursor(); ok {
		info.StartCursor = start.String()
	}
	if end, ok := page.EndCursor(); ok {
		info.EndCursor = end.String()
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}
	return ConnectionResponse[T]{Data: items, PageInfo: info}
}
