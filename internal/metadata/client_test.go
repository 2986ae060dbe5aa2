package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-search/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, logger.Discard())
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "https://api.test"}, logger.Discard())
	assert.Error(t, err)

	_, err = NewClient(Config{APIKey: "key"}, logger.Discard())
	assert.Error(t, err)
}

func TestFetchMovies_EmptyQueryUsesDiscover(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"Top Movie","vote_average":8.1}]}`))
	})

	movies, err := client.FetchMovies(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "/discover/movie", gotPath)
	assert.Equal(t, "sort_by=popularity.desc", gotQuery)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, movies, 1)
	assert.Equal(t, "Top Movie", movies[0].Title)
}

func TestFetchMovies_QueryUsesSearch(t *testing.T) {
	var gotPath, gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"page":1,"results":[{"id":155,"title":"The Dark Knight","poster_path":"/p.jpg"}]}`))
	})

	movies, err := client.FetchMovies(context.Background(), "dark knight")
	require.NoError(t, err)

	assert.Equal(t, "/search/movie", gotPath)
	assert.Equal(t, "dark knight", gotQuery)
	require.Len(t, movies, 1)
	require.NotNil(t, movies[0].PosterPath)
	assert.Equal(t, "/p.jpg", *movies[0].PosterPath)
}

func TestFetchMovies_EmptyResults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	movies, err := client.FetchMovies(context.Background(), "no such movie zzz")
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestFetchMovies_StatusError(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusInternalServerError} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})

		_, err := client.FetchMovies(context.Background(), "batman")
		require.Error(t, err)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, ErrorKindStatus, apiErr.Kind)
		assert.Equal(t, code, apiErr.StatusCode)
	}
}

func TestFetchMovies_DecodeError(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		_, err := client.FetchMovies(context.Background(), "batman")
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, ErrorKindDecode, apiErr.Kind)
	})

	t.Run("missing results field", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"page":1}`))
		})

		_, err := client.FetchMovies(context.Background(), "batman")
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, ErrorKindDecode, apiErr.Kind)
	})
}

func TestFetchMovies_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"}, logger.Discard())
	require.NoError(t, err)

	_, err = client.FetchMovies(context.Background(), "batman")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, ErrorKindTransport, apiErr.Kind)
}

func TestFetchMovies_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchMovies(ctx, "batman")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, ErrorKindTransport, apiErr.Kind)
}
