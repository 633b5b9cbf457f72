package omdb

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rshade/moviefinder/internal/engine"
)

// notAvailable is the upstream placeholder for missing values.
const notAvailable = "N/A"

// text decodes any JSON scalar as its string form. Strings are unquoted,
// numbers and booleans keep their literal text, and null, objects and arrays
// become "". The upstream is loose about types in fields nothing depends on.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = text(s)
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '{' || trimmed[0] == '[' || bytes.Equal(trimmed, []byte("null")) {
		*t = ""
		return nil
	}
	*t = text(trimmed)
	return nil
}

// searchResponse is the body of a search request. Search is empty on zero
// matches, on an error envelope, and on any body without a usable array.
type searchResponse struct {
	Search       []searchItem    `json:"-"`
	RawSearch    json.RawMessage `json:"Search"`
	TotalResults text            `json:"totalResults"`
	Response     text            `json:"Response"`
	Error        text            `json:"Error"`
}

type searchItem struct {
	ImdbID text `json:"imdbID"`
	Title  text `json:"Title"`
	Year   text `json:"Year"`
	Type   text `json:"Type"`
	Poster text `json:"Poster"`
}

// detailResponse is the body of a detail request.
type detailResponse struct {
	ImdbID     text `json:"imdbID"`
	Title      text `json:"Title"`
	Year       text `json:"Year"`
	Rated      text `json:"Rated"`
	Released   text `json:"Released"`
	Runtime    text `json:"Runtime"`
	Genre      text `json:"Genre"`
	Director   text `json:"Director"`
	Actors     text `json:"Actors"`
	Plot       text `json:"Plot"`
	Poster     text `json:"Poster"`
	ImdbRating text `json:"imdbRating"`
	ImdbVotes  text `json:"imdbVotes"`
	Response   text `json:"Response"`
	Error      text `json:"Error"`
}

// decodeSearch reads a search body. A value that is not an object, or a
// Search field that is not an array, yields an empty response. Entries that
// are not objects are skipped.
func decodeSearch(raw json.RawMessage) searchResponse {
	var r searchResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return searchResponse{}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(r.RawSearch, &entries); err != nil {
		return r
	}
	for _, entry := range entries {
		var item searchItem
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		r.Search = append(r.Search, item)
	}
	return r
}

// decodeDetail reads a detail body. A value that is not an object yields
// an empty record.
func decodeDetail(raw json.RawMessage) detailResponse {
	var r detailResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return detailResponse{}
	}
	return r
}

func (r searchResponse) toPage() engine.SearchPage {
	results := make([]engine.MovieSummary, 0, len(r.Search))
	for _, item := range r.Search {
		results = append(results, engine.MovieSummary{
			ID:        string(item.ImdbID),
			Title:     string(item.Title),
			Year:      string(item.Year),
			Type:      string(item.Type),
			PosterURL: posterURL(item.Poster),
		})
	}

	total, err := strconv.Atoi(strings.TrimSpace(string(r.TotalResults)))
	if err != nil || total < len(results) {
		total = len(results)
	}
	return engine.SearchPage{Results: results, TotalResults: total}
}

// toDetail maps the body onto a MovieDetail. Requests that asked for id get
// that id back even when the upstream omits it.
func (r detailResponse) toDetail(id string) engine.MovieDetail {
	d := engine.MovieDetail{
		ID:        string(r.ImdbID),
		Title:     string(r.Title),
		Year:      string(r.Year),
		Plot:      string(r.Plot),
		Rating:    string(r.ImdbRating),
		PosterURL: posterURL(r.Poster),
		Rated:     string(r.Rated),
		Released:  string(r.Released),
		Runtime:   string(r.Runtime),
		Genre:     string(r.Genre),
		Director:  string(r.Director),
		Actors:    string(r.Actors),
		Votes:     string(r.ImdbVotes),
	}
	if d.ID == "" {
		d.ID = id
	}
	return d
}

func posterURL(raw text) string {
	if raw == notAvailable {
		return ""
	}
	return string(raw)
}

// isFalse reports whether an envelope carries Response "False".
func isFalse(response string) bool {
	return strings.EqualFold(response, "False")
}
