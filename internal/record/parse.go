package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date form used for purchase and expiry dates.
const DateLayout = "2006-01-02"

// ParseCost converts user-entered text into a unit price.
// The value must parse as a number and must not be negative.
//
// All numeric conversion happens here, at the boundary: the store and the
// aggregation functions only ever see already-typed values.
func ParseCost(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("cost is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cost %q: not a number", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid cost %v: must not be negative", v)
	}
	return v, nil
}

// ParseQuantity converts user-entered text into a unit count.
// The value must parse as a whole number greater than zero.
func ParseQuantity(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("quantity is required")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: not a whole number", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid quantity %d: must be positive", v)
	}
	return v, nil
}

// ParseDate validates an optional calendar date and normalizes it to
// YYYY-MM-DD. An empty string is allowed and returned as-is (the date
// fields are optional).
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t.Format(DateLayout), nil
}
