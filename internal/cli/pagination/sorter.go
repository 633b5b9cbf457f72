package pagination

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rshade/moviefinder/internal/engine"
)

// SummarySorter sorts search results by a named field.
type SummarySorter struct {
	validFields map[string]bool
}

// NewSummarySorter returns a sorter accepting title, year, type and id.
func NewSummarySorter() *SummarySorter {
	return &SummarySorter{
		validFields: map[string]bool{
			"title": true,
			"year":  true,
			"type":  true,
			"id":    true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *SummarySorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *SummarySorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate reports an error for an unknown field. An empty field is valid.
func (s *SummarySorter) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}

// Sort returns a sorted copy of items. Ties keep upstream order. An empty
// or unknown field returns items unchanged.
func (s *SummarySorter) Sort(items []engine.MovieSummary, field, order string) []engine.MovieSummary {
	if !s.IsValidField(field) {
		return items
	}

	sorted := make([]engine.MovieSummary, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case "title":
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		case "year":
			return startYear(sorted[i].Year) < startYear(sorted[j].Year)
		case "type":
			return sorted[i].Type < sorted[j].Type
		case "id":
			return sorted[i].ID < sorted[j].ID
		default:
			return false
		}
	})

	return sorted
}

// startYear extracts the first year of values like "2005" or "2011–2019".
// Unparseable years sort first.
func startYear(year string) int {
	const yearDigits = 4
	if len(year) < yearDigits {
		return 0
	}
	n, err := strconv.Atoi(year[:yearDigits])
	if err != nil {
		return 0
	}
	return n
}
