package domain

import (
	"strconv"
	"time"
)

// Cursor marks a position in a feed ordered by creation time.
// It holds millisecond precision and is always UTC.
type Cursor struct {
	millis int64
}

// NewCursor truncates t to the millisecond.
func NewCursor(t time.Time) Cursor {
	return Cursor{millis: t.UnixMilli()}
}

// CursorFromMillis builds a cursor from an epoch millisecond value.
func CursorFromMillis(millis int64) Cursor {
	return Cursor{millis: millis}
}

// Millis returns the cursor as epoch milliseconds.
func (c Cursor) Millis() int64 {
	return c.millis
}

// Time returns the cursor as a UTC time.
func (c Cursor) Time() time.Time {
	return time.UnixMilli(c.millis).UTC()
}

// String encodes the cursor as its base 10 millisecond epoch value.
func (c Cursor) String() string {
	return strconv.FormatInt(c.millis, 10)
}

// MarshalText lets cursors appear directly in JSON responses.
func (c Cursor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCursor decodes a string produced by Cursor.String.
// An empty, malformed or non-canonical string ("+5", "007", "-0") yields ok == false
// rather than an error.
func ParseCursor(s string) (c Cursor, ok bool) {
	if s == "" {
		return Cursor{}, false
	}

	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(millis, 10) != s {
		return Cursor{}, false
	}

	return Cursor{millis: millis}, true
}
