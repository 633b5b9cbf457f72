package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders and defaults.
const (
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	DefaultSortOrder = SortOrderAsc
)

// Common validation errors.
var (
	ErrInvalidLimit      = errors.New("limit cannot be negative")
	ErrInvalidOffset     = errors.New("offset cannot be negative")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'year:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Params holds the CLI slicing and sorting flags. A zero Limit means no
// limit.
type Params struct {
	Limit     int
	Offset    int
	SortField string
	SortOrder string
}

// NewParams parses the raw flag values into Params and validates them.
func NewParams(limit, offset int, sortExpr string) (Params, error) {
	field, order, err := ParseSort(sortExpr)
	if err != nil {
		return Params{}, err
	}
	p := Params{Limit: limit, Offset: offset, SortField: field, SortOrder: order}
	return p, p.Validate()
}

// Validate checks the bounds of Limit and Offset.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOffset, p.Offset)
	}
	return nil
}

// IsEnabled reports whether any slicing flag is set.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0
}

// ParseSort parses a sort string in the format "field" or "field:order".
// An empty string means no sorting.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return strings.ToLower(field), order, nil
}

// Apply returns the window of items selected by Offset and Limit. An offset
// past the end yields an empty, non-nil slice.
func Apply[T any](p Params, items []T) []T {
	if p.Offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}
