package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/moviefinder/internal/config"
)

const testAPIKey = "test-key"

// fakeOMDb serves canned OMDb responses and counts requests.
type fakeOMDb struct {
	*httptest.Server
	requests atomic.Int32
}

func newFakeOMDb(t *testing.T) *fakeOMDb {
	t.Helper()
	f := &fakeOMDb{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		q := r.URL.Query()
		w.Header().Set("Content-Type", "application/json")

		if q.Get("apikey") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			return
		}

		switch {
		case q.Get("s") == "Batman":
			_, _ = w.Write([]byte(`{"Search":[{"imdbID":"tt0372784","Title":"Batman Begins","Year":"2005","Type":"movie","Poster":"url1"}],"totalResults":"1","Response":"True"}`))
		case q.Get("s") == "star wars":
			_, _ = w.Write([]byte(`{"Search":[{"imdbID":"tt0076759","Title":"Star Wars","Year":"1977","Type":"movie","Poster":"N/A"}],"totalResults":"4213","Response":"True"}`))
		case q.Get("s") == "Alien":
			_, _ = w.Write([]byte(`{"Search":[{"imdbID":"tt0078748","Title":"Alien","Year":"1979","Type":"movie","Poster":"N/A"},{"imdbID":"tt0090605","Title":"Aliens","Year":"1986","Type":"movie","Poster":"N/A"},{"imdbID":"tt0103644","Title":"Alien 3","Year":"1992","Type":"movie","Poster":"N/A"}],"totalResults":"3","Response":"True"}`))
		case q.Has("s"):
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
		case q.Get("i") == "tt0372784":
			_, _ = w.Write([]byte(`{"imdbID":"tt0372784","Title":"Batman Begins","Year":"2005","Plot":"...","imdbRating":"8.2","Poster":"url1","Response":"True"}`))
		case q.Get("i") == "tt0076759":
			_, _ = w.Write([]byte(`{"imdbID":"tt0076759","Title":"Star Wars","Year":"1977","Plot":"Luke.","imdbRating":"8.6","Poster":"N/A","Response":"True"}`))
		case q.Get("i") == "tt9999999":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
		}
	}))
	t.Cleanup(f.Close)
	return f
}

// envWith returns a lookup that serves only vars.
func envWith(vars map[string]string) config.LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// isolate points the config directory at a temp dir and resets the
// resolved global config around the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmdWithEnv("test", envWith(env))

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func keyEnv() map[string]string {
	return map[string]string{config.EnvAPIKey: testAPIKey}
}

// writeConfig writes a config file into dir and returns its path.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
