package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCMSFacade(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer cms-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/bookmakers":
			w.Write([]byte(`[{"id":"bm-1","slug":"ggbet","name":"GG.Bet"},{"id":"bm-2","slug":"betway","name":"Betway"}]`))
		case "/bookmakers/ggbet":
			w.Write([]byte(`{"id":"bm-1","slug":"ggbet","name":"GG.Bet","bonus":"100% up to $200","licenses":["curacao"]}`))
		case "/games":
			w.Write([]byte(`[{"id":"g-1","slug":"cs2","name":"Counter-Strike 2"}]`))
		case "/guides":
			assert.Equal(t, "cs2", r.URL.Query().Get("game"))
			w.Write([]byte(`[{"id":"gd-1","slug":"how-to-read-odds","title":"How to read odds","game_slug":"cs2"}]`))
		case "/guides/how-to-read-odds":
			w.Write([]byte(`{"id":"gd-1","slug":"how-to-read-odds","title":"How to read odds","body":"Odds express probability."}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cms := NewCMSFacade(srv.URL, "cms-token")

	t.Run("list bookmakers", func(t *testing.T) {
		bookmakers, err := cms.ListBookmakers(ctx)
		require.NoError(t, err)
		require.Len(t, bookmakers, 2)
		assert.Equal(t, "ggbet", bookmakers[0].Slug)
	})

	t.Run("get bookmaker", func(t *testing.T) {
		bookmaker, err := cms.GetBookmaker(ctx, "ggbet")
		require.NoError(t, err)
		assert.Equal(t, "GG.Bet", bookmaker.Name)
		assert.Equal(t, []string{"curacao"}, bookmaker.Licenses)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := cms.GetBookmaker(ctx, "ghost")
		assert.ErrorIs(t, err, ErrContentNotFound)
	})

	t.Run("list games", func(t *testing.T) {
		games, err := cms.ListGames(ctx)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "cs2", games[0].Slug)
	})

	t.Run("list guides filtered by game", func(t *testing.T) {
		guides, err := cms.ListGuides(ctx, "cs2")
		require.NoError(t, err)
		require.Len(t, guides, 1)
		assert.Equal(t, "how-to-read-odds", guides[0].Slug)
	})

	t.Run("get guide", func(t *testing.T) {
		guide, err := cms.GetGuide(ctx, "how-to-read-odds")
		require.NoError(t, err)
		assert.NotEmpty(t, guide.Body)
	})
}

func TestCMSFacade_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewCMSFacade(srv.URL, "cms-token").ListBookmakers(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrContentNotFound)
}
