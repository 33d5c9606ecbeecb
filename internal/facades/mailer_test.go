package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerFacade_SendPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the recovery link", func(t *testing.T) {
		var got mailPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/email", r.URL.Path)
			assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		mailer := NewMailerFacade(srv.URL, "mail-key", "noreply@ggtips.gg", "https://ggtips.gg/reset-password")

		err := mailer.SendPasswordReset(ctx, "alice@example.com", "recovery-token-123")
		require.NoError(t, err)

		assert.Equal(t, "noreply@ggtips.gg", got.From)
		assert.Equal(t, "alice@example.com", got.To)
		assert.Contains(t, got.Text, "https://ggtips.gg/reset-password?token=recovery-token-123")
	})

	t.Run("provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		mailer := NewMailerFacade(srv.URL, "mail-key", "noreply@ggtips.gg", "https://ggtips.gg/reset-password")

		err := mailer.SendPasswordReset(ctx, "alice@example.com", "recovery-token-123")
		assert.Error(t, err)
	})
}
