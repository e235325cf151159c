package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSourceGetSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sets/en1.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"set":"en1","desc":"Base Set","cards":[]}`))
		case "/sets/boom.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 2*time.Second)

	t.Run("ok", func(t *testing.T) {
		set, err := src.GetSet(context.Background(), "en1")
		require.NoError(t, err)
		assert.Equal(t, "en1", set.Set)
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := src.GetSet(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upstream failure is not a miss", func(t *testing.T) {
		_, err := src.GetSet(context.Background(), "boom")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "500")
	})
}
