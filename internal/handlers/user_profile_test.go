package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/services"
)

func TestUserProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "john@example.com"
	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe", DisplayName: "John", Email: &email}

	tests := []struct {
		name         string
		username     string
		mockSetup    func(svc *MockUserGetter)
		expectedCode int
	}{
		{
			name:     "found",
			username: "john_doe",
			mockSetup: func(svc *MockUserGetter) {
				svc.EXPECT().GetByUsername(gomock.Any(), "john_doe").Return(user, nil)
				svc.EXPECT().AvatarURL(gomock.Any(), user).Return("")
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "not found",
			username: "ghost",
			mockSetup: func(svc *MockUserGetter) {
				svc.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "internal error",
			username: "john_doe",
			mockSetup: func(svc *MockUserGetter) {
				svc.EXPECT().GetByUsername(gomock.Any(), "john_doe").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/users/{username}", NewUserProfileHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.username, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp UserResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "john_doe", resp.Username)
				// Public view never exposes the email.
				assert.Empty(t, resp.Email)
			}
		})
	}
}
