package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteamFacade_GetPlayerSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ISteamUser/GetPlayerSummaries/v2/", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.Equal(t, "76561198000000001", r.URL.Query().Get("steamids"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"response":{"players":[{
				"steamid":"76561198000000001",
				"personaname":"Gabe N.",
				"profileurl":"https://steamcommunity.com/id/gaben/",
				"avatar":"https://avatars.steamstatic.com/small.jpg",
				"avatarfull":"https://avatars.steamstatic.com/full.jpg",
				"loccountrycode":"US",
				"communityvisibilitystate":3
			}]}}`))
		}))
		defer srv.Close()

		snapshot, err := NewSteamFacade(srv.URL, "test-key").GetPlayerSummary(ctx, "76561198000000001")
		require.NoError(t, err)

		assert.Equal(t, "76561198000000001", *snapshot.SteamID)
		assert.Equal(t, "Gabe N.", *snapshot.PersonaName)
		assert.Equal(t, "US", *snapshot.CountryCode)
		assert.Equal(t, 3, *snapshot.Visibility)
		assert.Nil(t, snapshot.StateCode)
		assert.Nil(t, snapshot.CityID)
	})

	t.Run("unknown steam id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response":{"players":[]}}`))
		}))
		defer srv.Close()

		_, err := NewSteamFacade(srv.URL, "test-key").GetPlayerSummary(ctx, "76561198000000002")
		assert.ErrorIs(t, err, ErrSteamProfileNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewSteamFacade(srv.URL, "test-key").GetPlayerSummary(ctx, "76561198000000001")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSteamProfileNotFound)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := NewSteamFacade(srv.URL, "test-key").GetPlayerSummary(ctx, "76561198000000001")
		assert.Error(t, err)
	})
}
