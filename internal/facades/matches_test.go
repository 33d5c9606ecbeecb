package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesFacade(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/matches":
			assert.Equal(t, "cs2", r.URL.Query().Get("game"))
			w.Write([]byte(`[{
				"id":"match-42","game_slug":"cs2","tournament":"IEM Katowice","status":"live",
				"team_a":{"id":"t-1","name":"NAVI","score":1},
				"team_b":{"id":"t-2","name":"FaZe","score":0}
			}]`))
		case "/matches/match-42":
			w.Write([]byte(`{"id":"match-42","game_slug":"cs2","status":"live","team_a":{"id":"t-1","name":"NAVI"},"team_b":{"id":"t-2","name":"FaZe"}}`))
		case "/rankings":
			w.Write([]byte(`[{"position":1,"team_id":"t-1","team_name":"NAVI","game_slug":"cs2","points":1000}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	matches := NewMatchesFacade(srv.URL)

	t.Run("list matches", func(t *testing.T) {
		list, err := matches.ListMatches(ctx, "cs2")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "NAVI", list[0].TeamA.Name)
		assert.Equal(t, 1, list[0].TeamA.Score)
	})

	t.Run("get match", func(t *testing.T) {
		match, err := matches.GetMatch(ctx, "match-42")
		require.NoError(t, err)
		assert.Equal(t, "live", match.Status)
	})

	t.Run("unknown match", func(t *testing.T) {
		_, err := matches.GetMatch(ctx, "match-99")
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("rankings", func(t *testing.T) {
		rankings, err := matches.GetRankings(ctx, "cs2")
		require.NoError(t, err)
		require.Len(t, rankings, 1)
		assert.Equal(t, 1, rankings[0].Position)
	})
}

func TestMatchesFacade_Unavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := NewMatchesFacade(srv.URL).ListMatches(ctx, "")
		assert.ErrorIs(t, err, ErrMatchesUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := NewMatchesFacade(srv.URL).GetRankings(ctx, "cs2")
		assert.ErrorIs(t, err, ErrMatchesUnavailable)
	})
}
