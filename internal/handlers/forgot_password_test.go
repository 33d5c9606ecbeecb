package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ggtips/gg-tips-backend/internal/services"
)

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockForgotPassworder(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: ForgotPasswordRequest{Email: "john@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ForgotPassword(gomock.Any(), "john@example.com").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "unknown email",
			inputBody: ForgotPasswordRequest{Email: "ghost@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ForgotPassword(gomock.Any(), "ghost@example.com").
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid email",
			inputBody:    ForgotPasswordRequest{Email: "not-an-email"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			NewForgotPasswordHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
