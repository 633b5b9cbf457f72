package engine

import (
	"context"
	"sync"
)

// fakeClient is an in-memory MovieClient. Unknown detail ids return an
// empty record, the way the upstream answers an unknown id.
type fakeClient struct {
	mu sync.Mutex

	pages     map[string]SearchPage
	details   map[string]MovieDetail
	searchErr error
	detailErr error

	searchCalls []string
	detailCalls []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		pages: map[string]SearchPage{
			"Batman": {
				Results: []MovieSummary{
					{ID: "tt0372784", Title: "Batman Begins", PosterURL: "url1"},
				},
				TotalResults: 1,
			},
			"Star": {
				Results: []MovieSummary{
					{ID: "tt0076759", Title: "Star Wars", Year: "1977", Type: "movie"},
					{ID: "tt0080684", Title: "Star Wars: Episode V", Year: "1980", Type: "movie"},
					{ID: "tt0086190", Title: "Star Wars: Episode VI", Year: "1983", Type: "movie"},
				},
				TotalResults: 4213,
			},
		},
		details: map[string]MovieDetail{
			"tt0372784": {
				ID:        "tt0372784",
				Title:     "Batman Begins",
				Year:      "2005",
				Plot:      "...",
				Rating:    "8.2",
				PosterURL: "url1",
			},
		},
	}
}

func (f *fakeClient) Search(_ context.Context, query string) (SearchPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, query)
	if f.searchErr != nil {
		return SearchPage{}, f.searchErr
	}
	return f.pages[query], nil
}

func (f *fakeClient) Detail(_ context.Context, id string) (MovieDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, id)
	if f.detailErr != nil {
		return MovieDetail{}, f.detailErr
	}
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return MovieDetail{ID: id}, nil
}

func (f *fakeClient) setSearchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchErr = err
}

func (f *fakeClient) setDetailErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailErr = err
}
