package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ggtips/gg-tips-backend/internal/logger"
)

// MailerFacade sends transactional email through the provider's HTTP API.
type MailerFacade struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
	resetURL   string
}

// NewMailerFacade creates a transactional mail client. resetURL is the
// frontend page the recovery link points at; the token is appended as a
// query parameter.
func NewMailerFacade(baseURL, apiKey, from, resetURL string) *MailerFacade {
	return &MailerFacade{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		from:       from,
		resetURL:   resetURL,
	}
}

type mailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendPasswordReset emails a recovery link containing the given token.
func (f *MailerFacade) SendPasswordReset(ctx context.Context, email, recoveryToken string) error {
	payload := mailPayload{
		From:    f.from,
		To:      email,
		Subject: "Reset your password",
		Text:    fmt.Sprintf("Follow this link to reset your password: %s?token=%s", f.resetURL, recoveryToken),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("mail request failed", "to", email, "error", err)
		return fmt.Errorf("mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Log.Errorw("mail provider returned error", "to", email, "status", resp.StatusCode)
		return fmt.Errorf("mail provider status %d", resp.StatusCode)
	}

	return nil
}
