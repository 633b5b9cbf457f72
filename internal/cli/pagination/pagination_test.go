package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/moviefinder/internal/engine"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty", input: "", wantField: "", wantOrder: SortOrderAsc},
		{name: "field only", input: "year", wantField: "year", wantOrder: SortOrderAsc},
		{name: "field and order", input: "year:desc", wantField: "year", wantOrder: SortOrderDesc},
		{name: "case insensitive", input: "Title:DESC", wantField: "title", wantOrder: SortOrderDesc},
		{name: "whitespace", input: " title : asc ", wantField: "title", wantOrder: SortOrderAsc},
		{name: "too many parts", input: "a:b:c", wantErr: ErrInvalidSortFormat},
		{name: "empty field", input: ":asc", wantErr: ErrEmptySortField},
		{name: "bad order", input: "year:up", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestNewParams(t *testing.T) {
	p, err := NewParams(5, 2, "year:desc")
	require.NoError(t, err)
	assert.Equal(t, Params{Limit: 5, Offset: 2, SortField: "year", SortOrder: SortOrderDesc}, p)
	assert.True(t, p.IsEnabled())

	_, err = NewParams(-1, 0, "")
	require.ErrorIs(t, err, ErrInvalidLimit)

	_, err = NewParams(0, -1, "")
	require.ErrorIs(t, err, ErrInvalidOffset)

	p, err = NewParams(0, 0, "")
	require.NoError(t, err)
	assert.False(t, p.IsEnabled())
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{name: "no limit", params: Params{}, want: []int{1, 2, 3, 4, 5}},
		{name: "limit", params: Params{Limit: 2}, want: []int{1, 2}},
		{name: "offset", params: Params{Offset: 3}, want: []int{4, 5}},
		{name: "offset and limit", params: Params{Offset: 1, Limit: 2}, want: []int{2, 3}},
		{name: "limit past end", params: Params{Offset: 4, Limit: 10}, want: []int{5}},
		{name: "offset past end", params: Params{Offset: 9}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}
}

func TestSummarySorter(t *testing.T) {
	items := []engine.MovieSummary{
		{ID: "tt3", Title: "batman", Year: "2011–2019", Type: "series"},
		{ID: "tt1", Title: "Alien", Year: "1979", Type: "movie"},
		{ID: "tt2", Title: "Casablanca", Year: "N/A", Type: "movie"},
	}
	s := NewSummarySorter()

	ids := func(in []engine.MovieSummary) []string {
		out := make([]string, 0, len(in))
		for _, m := range in {
			out = append(out, m.ID)
		}
		return out
	}

	assert.Equal(t, []string{"tt1", "tt3", "tt2"}, ids(s.Sort(items, "title", SortOrderAsc)))
	assert.Equal(t, []string{"tt2", "tt1", "tt3"}, ids(s.Sort(items, "year", SortOrderAsc)))
	assert.Equal(t, []string{"tt3", "tt1", "tt2"}, ids(s.Sort(items, "year", SortOrderDesc)))
	assert.Equal(t, []string{"tt1", "tt2", "tt3"}, ids(s.Sort(items, "id", SortOrderAsc)))
	assert.Equal(t, []string{"tt1", "tt2", "tt3"}, ids(s.Sort(items, "type", SortOrderAsc)))

	// Unknown fields leave the input untouched.
	assert.Equal(t, []string{"tt3", "tt1", "tt2"}, ids(s.Sort(items, "rating", SortOrderAsc)))
	assert.Equal(t, "tt3", items[0].ID)
}

func TestSummarySorter_Validate(t *testing.T) {
	s := NewSummarySorter()

	assert.NoError(t, s.Validate(""))
	assert.NoError(t, s.Validate("year"))
	err := s.Validate("rating")
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, err.Error(), "id, title, type, year")
	assert.Equal(t, []string{"id", "title", "type", "year"}, s.GetValidFields())
}
