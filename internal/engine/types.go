package engine

import "context"

// MovieSummary is one entry of a search result list.
type MovieSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year,omitempty"`
	Type      string `json:"type,omitempty"`
	PosterURL string `json:"poster_url,omitempty"`
}

// MovieDetail is the full record for one title. Fields the upstream record
// does not carry are empty strings.
type MovieDetail struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Plot      string `json:"plot"`
	Rating    string `json:"rating"`
	PosterURL string `json:"poster_url,omitempty"`

	Rated    string `json:"rated,omitempty"`
	Released string `json:"released,omitempty"`
	Runtime  string `json:"runtime,omitempty"`
	Genre    string `json:"genre,omitempty"`
	Director string `json:"director,omitempty"`
	Actors   string `json:"actors,omitempty"`
	Votes    string `json:"votes,omitempty"`
}

// SearchPage is one page of upstream search results. An empty Results
// slice means the upstream reported no matches.
type SearchPage struct {
	Results      []MovieSummary
	TotalResults int
}

// Searcher runs free-text title searches.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchPage, error)
}

// DetailFetcher retrieves the full record for one identifier.
type DetailFetcher interface {
	Detail(ctx context.Context, id string) (MovieDetail, error)
}

// MovieClient is the full upstream surface used by Engine.
type MovieClient interface {
	Searcher
	DetailFetcher
}
