package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	millis int64
}

func (n testNode) PageCursor() Cursor {
	return CursorFromMillis(n.millis)
}

func nodes(millis ...int64) []testNode {
	result := make([]testNode, 0, len(millis))
	for _, m := range millis {
		result = append(result, testNode{millis: m})
	}
	return result
}

func cursorPtr(millis int64) *Cursor {
	c := CursorFromMillis(millis)
	return &c
}

func TestNewPageRequest(t *testing.T) {
	cases := []struct {
		name      string
		direction Direction
		limit     int
		cursor    *Cursor
		wantErr   error
	}{
		{name: "next_without_cursor", direction: DirectionNext, limit: 20},
		{name: "next_with_cursor", direction: DirectionNext, limit: 20, cursor: cursorPtr(100)},
		{name: "prev_with_cursor", direction: DirectionPrev, limit: 1, cursor: cursorPtr(100)},
		{name: "prev_without_cursor", direction: DirectionPrev, limit: 20, wantErr: ErrPrevRequiresCursor},
		{name: "zero_limit", direction: DirectionNext, limit: 0, wantErr: ErrInvalidPageLimit},
		{name: "negative_limit", direction: DirectionNext, limit: -3, wantErr: ErrInvalidPageLimit},
		{name: "unknown_direction", direction: "sideways", limit: 5, wantErr: ErrUnknownDirection},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewPageRequest(tc.direction, tc.limit, tc.cursor)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.limit+1, req.QueryLimit())
			assert.Equal(t, tc.cursor, req.Cursor)
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, DirectionNext, d)

	d, err = ParseDirection("prev")
	require.NoError(t, err)
	assert.Equal(t, DirectionPrev, d)

	_, err = ParseDirection("up")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name        string
		rows        []testNode
		req         PageRequest
		wantItems   []testNode
		wantNext    bool
		wantPrev    bool
		wantStart   string
		wantEnd     string
		wantNoStart bool
	}{
		{
			name:      "next_over_fetch_trims_sentinel",
			rows:      nodes(300, 200, 100),
			req:       FirstPage(2),
			wantItems: nodes(300, 200),
			wantNext:  true,
			wantStart: "300",
			wantEnd:   "200",
		},
		{
			name:      "next_exactly_limit_has_no_more",
			rows:      nodes(300, 200),
			req:       FirstPage(2),
			wantItems: nodes(300, 200),
			wantStart: "300",
			wantEnd:   "200",
		},
		{
			name:      "next_fewer_than_limit",
			rows:      nodes(300),
			req:       FirstPage(5),
			wantItems: nodes(300),
			wantStart: "300",
			wantEnd:   "300",
		},
		{
			name:      "limit_one_with_extra",
			rows:      nodes(300, 200),
			req:       FirstPage(1),
			wantItems: nodes(300),
			wantNext:  true,
			wantStart: "300",
			wantEnd:   "300",
		},
		{
			name:      "prev_reverses_and_trims",
			rows:      nodes(200, 300, 400),
			req:       PageRequest{Direction: DirectionPrev, Limit: 2, Cursor: cursorPtr(100)},
			wantItems: nodes(300, 200),
			wantPrev:  true,
			wantStart: "300",
			wantEnd:   "200",
		},
		{
			name:      "prev_without_extra",
			rows:      nodes(200, 300),
			req:       PageRequest{Direction: DirectionPrev, Limit: 2, Cursor: cursorPtr(100)},
			wantItems: nodes(300, 200),
			wantStart: "300",
			wantEnd:   "200",
		},
		{
			name:        "empty_next",
			rows:        nil,
			req:         FirstPage(2),
			wantItems:   []testNode{},
			wantNoStart: true,
		},
		{
			name:        "empty_prev",
			rows:        []testNode{},
			req:         PageRequest{Direction: DirectionPrev, Limit: 2, Cursor: cursorPtr(100)},
			wantItems:   []testNode{},
			wantNoStart: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Paginate(tc.rows, tc.req)

			assert.Equal(t, tc.wantItems, result.Items)
			assert.LessOrEqual(t, len(result.Items), tc.req.Limit)
			assert.Equal(t, tc.wantNext, result.HasNext)
			assert.Equal(t, tc.wantPrev, result.HasPrevious)

			start, startOK := result.StartCursor()
			end, endOK := result.EndCursor()
			if tc.wantNoStart {
				assert.False(t, startOK)
				assert.False(t, endOK)
				return
			}
			require.True(t, startOK)
			require.True(t, endOK)
			assert.Equal(t, tc.wantStart, start.String())
			assert.Equal(t, tc.wantEnd, end.String())
		})
	}
}

func TestPaginate_DoesNotMutateRows(t *testing.T) {
	rows := nodes(200, 300, 400)

	Paginate(rows, PageRequest{Direction: DirectionPrev, Limit: 2, Cursor: cursorPtr(100)})

	assert.Equal(t, nodes(200, 300, 400), rows)
}

func TestPaginate_PrevIsReverseOfFetchOrder(t *testing.T) {
	for limit := 1; limit <= 5; limit++ {
		rows := nodes(10, 20, 30, 40)
		result := Paginate(rows, PageRequest{Direction: DirectionPrev, Limit: limit, Cursor: cursorPtr(0)})

		kept := min(limit, len(rows))
		want := make([]testNode, 0, kept)
		for i := kept - 1; i >= 0; i-- {
			want = append(want, rows[i])
		}
		assert.Equal(t, want, result.Items, "limit %d", limit)
		assert.Equal(t, len(rows) > limit, result.HasPrevious, "limit %d", limit)
		assert.False(t, result.HasNext, "limit %d", limit)
	}
}
