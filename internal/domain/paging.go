package domain

import (
	"fmt"
	"slices"
)

// Direction is the scroll direction of a keyset page request.
type Direction string

const (
	// DirectionNext pages towards older items.
	DirectionNext Direction = "next"
	// DirectionPrev pages towards newer items.
	DirectionPrev Direction = "prev"
)

// ParseDirection accepts "next" or "prev"; an empty string means next.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", DirectionNext:
		return DirectionNext, nil
	case DirectionPrev:
		return DirectionPrev, nil
	default:
		return "", fmt.Errorf("%w [%s]", ErrUnknownDirection, s)
	}
}

// PageRequest is the input to any keyset-paginated query.
type PageRequest struct {
	Direction Direction
	Limit     int
	Cursor    *Cursor
}

// NewPageRequest validates and builds a PageRequest.
func NewPageRequest(direction Direction, limit int, cursor *Cursor) (PageRequest, error) {
	if limit <= 0 {
		return PageRequest{}, fmt.Errorf("%w [%d]", ErrInvalidPageLimit, limit)
	}

	switch direction {
	case DirectionNext:
	case DirectionPrev:
		if cursor == nil {
			return PageRequest{}, ErrPrevRequiresCursor
		}
	default:
		return PageRequest{}, fmt.Errorf("%w [%s]", ErrUnknownDirection, direction)
	}

	return PageRequest{Direction: direction, Limit: limit, Cursor: cursor}, nil
}

// FirstPage requests the start of a feed.
func FirstPage(limit int) PageRequest {
	return PageRequest{Direction: DirectionNext, Limit: limit}
}

func (p PageRequest) IsNext() bool {
	return p.Direction != DirectionPrev
}

// QueryLimit is the number of rows a row source must fetch: one more than the page
// so the pager can tell whether another page exists.
func (p PageRequest) QueryLimit() int {
	return p.Limit + 1
}

// Node is an item that can be positioned in a keyset feed.
type Node interface {
	PageCursor() Cursor
}

// PagedResult is one page of a keyset feed, always in the feed's natural order.
type PagedResult[T Node] struct {
	Items       []T
	HasNext     bool
	HasPrevious bool
}

// StartCursor returns the cursor of the first visible item.
func (r PagedResult[T]) StartCursor() (Cursor, bool) {
	if len(r.Items) == 0 {
		return Cursor{}, false
	}
	return r.Items[0].PageCursor(), true
}

// EndCursor returns the cursor of the last visible item.
func (r PagedResult[T]) EndCursor() (Cursor, bool) {
	if len(r.Items) == 0 {
		return Cursor{}, false
	}
	return r.Items[len(r.Items)-1].PageCursor(), true
}

// Paginate turns rows fetched with req.QueryLimit() into a page.
//
// Rows must already be filtered to the correct side of the cursor and ordered by it:
// descending for next, ascending for prev. The extra lookahead row, when present, only
// sets the "more" flag for the request's direction and is never returned.
func Paginate[T Node](rows []T, req PageRequest) PagedResult[T] {
	if len(rows) == 0 {
		return PagedResult[T]{Items: []T{}}
	}

	hasExtra := len(rows) > req.Limit
	items := rows
	if hasExtra {
		items = rows[:req.Limit]
	}
	items = slices.Clone(items)

	if !req.IsNext() {
		slices.Reverse(items)
	}

	result := PagedResult[T]{Items: items}
	if req.IsNext() {
		result.HasNext = hasExtra
	} else {
		result.HasPrevious = hasExtra
	}

	return result
}
