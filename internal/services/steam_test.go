package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/repositories"
	"github.com/ggtips/gg-tips-backend/internal/services"
)

const testSteamID = "76561198000000001"

func steamSnapshot() *models.SteamProviderDB {
	persona := "Gabe N."
	profileURL := "https://steamcommunity.com/id/gaben"
	id := testSteamID
	return &models.SteamProviderDB{
		SteamID:     &id,
		PersonaName: &persona,
		ProfileURL:  &profileURL,
	}
}

func newSteamService(ctrl *gomock.Controller) (
	*services.SteamService,
	*services.MockUserReader,
	*services.MockUserWriter,
	*services.MockTokenGenerator,
	*services.MockSteamProfileFetcher,
) {
	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockSteam := services.NewMockSteamProfileFetcher(ctrl)

	svc := services.NewSteamService(mockReader, mockWriter, mockTokens, mockSteam, nil, nil, "user.registered")
	return svc, mockReader, mockWriter, mockTokens, mockSteam
}

func TestSteamService_Link_CreatesAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, mockTokens, mockSteam := newSteamService(ctrl)

	mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
	mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(nil, nil)
	mockReader.EXPECT().ExistsUsername(gomock.Any(), gomock.Any()).Return(false, nil)

	var created *models.UserDB
	mockWriter.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.UserDB) error {
			created = u
			return nil
		})
	mockTokens.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("token123", nil)
	mockWriter.EXPECT().
		SetAccessToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.Link(context.Background(), nil, testSteamID)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Created)
	assert.Equal(t, "token123", result.Token)
	require.NotNil(t, created)
	assert.Regexp(t, regexp.MustCompile(`^gaben_\d+$`), created.Username)
	assert.Equal(t, "Gabe N.", created.DisplayName)
	assert.True(t, created.Linked())
	assert.Empty(t, created.PasswordHash)
}

func TestSteamService_Link_ExistingHolderLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, mockTokens, mockSteam := newSteamService(ctrl)

	holder := &models.UserDB{UserID: uuid.New(), Username: "gaben_42"}

	mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
	mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(holder, nil)
	mockTokens.EXPECT().Generate(gomock.Any(), holder.UserID).Return("token456", nil)
	mockWriter.EXPECT().SetAccessToken(gomock.Any(), holder.UserID, gomock.Any()).Return(nil)
	mockWriter.EXPECT().SetSteamProvider(gomock.Any(), holder.UserID, gomock.Any()).Return(nil)

	result, err := svc.Link(context.Background(), nil, testSteamID)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, "token456", result.Token)
	assert.Equal(t, holder.UserID, result.User.UserID)
	assert.True(t, result.User.Linked())
}

func TestSteamService_Link_AttachesToCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, _, mockSteam := newSteamService(ctrl)

	caller := &models.UserDB{UserID: uuid.New(), Username: "alice"}

	mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
	mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(nil, nil)
	mockWriter.EXPECT().SetSteamProvider(gomock.Any(), caller.UserID, gomock.Any()).Return(nil)

	result, err := svc.Link(context.Background(), caller, testSteamID)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Empty(t, result.Token)
	assert.True(t, result.User.Linked())
}

func TestSteamService_Link_Conflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &models.UserDB{UserID: uuid.New(), Username: "alice"}
	other := &models.UserDB{UserID: uuid.New(), Username: "bob"}

	t.Run("steam id held by another account", func(t *testing.T) {
		svc, mockReader, _, _, mockSteam := newSteamService(ctrl)

		mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
		mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(other, nil)

		_, err := svc.Link(context.Background(), caller, testSteamID)
		assert.ErrorIs(t, err, services.ErrSteamIDTaken)
	})

	t.Run("re-linking own steam id succeeds", func(t *testing.T) {
		svc, mockReader, mockWriter, _, mockSteam := newSteamService(ctrl)

		mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
		mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(caller, nil)
		mockWriter.EXPECT().SetSteamProvider(gomock.Any(), caller.UserID, gomock.Any()).Return(nil)

		_, err := svc.Link(context.Background(), caller, testSteamID)
		assert.NoError(t, err)
	})

	t.Run("storage unique index wins the race", func(t *testing.T) {
		svc, mockReader, mockWriter, _, mockSteam := newSteamService(ctrl)

		mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
		mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(nil, nil)
		mockWriter.EXPECT().
			SetSteamProvider(gomock.Any(), caller.UserID, gomock.Any()).
			Return(&repositories.UniqueViolationError{Constraint: repositories.ConstraintSteamID})

		_, err := svc.Link(context.Background(), caller, testSteamID)
		assert.ErrorIs(t, err, services.ErrSteamIDTaken)
	})
}

func TestSteamService_Link_PlatformErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown steam id", func(t *testing.T) {
		svc, _, _, _, mockSteam := newSteamService(ctrl)

		mockSteam.EXPECT().
			GetPlayerSummary(gomock.Any(), "0").
			Return(nil, facades.ErrSteamProfileNotFound)

		_, err := svc.Link(context.Background(), nil, "0")
		assert.ErrorIs(t, err, services.ErrInvalidSteamID)
	})

	t.Run("platform unavailable", func(t *testing.T) {
		svc, _, _, _, mockSteam := newSteamService(ctrl)

		mockSteam.EXPECT().
			GetPlayerSummary(gomock.Any(), testSteamID).
			Return(nil, errors.New("connection refused"))

		_, err := svc.Link(context.Background(), nil, testSteamID)
		assert.ErrorIs(t, err, services.ErrSteamUnavailable)
	})
}

func TestSteamService_Link_UsesProfileCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)
	mockSteam := services.NewMockSteamProfileFetcher(ctrl)
	mockCache := services.NewMockProfileCache(ctrl)

	svc := services.NewSteamService(mockReader, mockWriter, mockTokens, mockSteam, mockCache, nil, "user.registered")

	holder := &models.UserDB{UserID: uuid.New(), Username: "gaben_42"}
	cached, err := json.Marshal(steamSnapshot())
	require.NoError(t, err)

	// Cache hit: the platform is never called.
	mockCache.EXPECT().Get(gomock.Any(), "steam_profile:"+testSteamID).Return(cached, nil)
	mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(holder, nil)
	mockTokens.EXPECT().Generate(gomock.Any(), holder.UserID).Return("token123", nil)
	mockWriter.EXPECT().SetAccessToken(gomock.Any(), holder.UserID, gomock.Any()).Return(nil)
	mockWriter.EXPECT().SetSteamProvider(gomock.Any(), holder.UserID, gomock.Any()).Return(nil)

	result, err := svc.Link(context.Background(), nil, testSteamID)
	require.NoError(t, err)
	assert.True(t, result.User.Linked())

	// Cache miss: fetched from the platform and written back.
	mockCache.EXPECT().Get(gomock.Any(), "steam_profile:"+testSteamID).Return(nil, nil)
	mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
	mockCache.EXPECT().Set(gomock.Any(), "steam_profile:"+testSteamID, gomock.Any()).Return(nil)
	mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(holder, nil)
	mockTokens.EXPECT().Generate(gomock.Any(), holder.UserID).Return("token123", nil)
	mockWriter.EXPECT().SetAccessToken(gomock.Any(), holder.UserID, gomock.Any()).Return(nil)
	mockWriter.EXPECT().SetSteamProvider(gomock.Any(), holder.UserID, gomock.Any()).Return(nil)

	_, err = svc.Link(context.Background(), nil, testSteamID)
	require.NoError(t, err)
}

func TestSteamService_Link_UsernameFallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("exhausted draws fall back to uuid fragment", func(t *testing.T) {
		svc, mockReader, mockWriter, mockTokens, mockSteam := newSteamService(ctrl)

		mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(steamSnapshot(), nil)
		mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(nil, nil)
		mockReader.EXPECT().ExistsUsername(gomock.Any(), gomock.Any()).Return(true, nil).Times(10)

		var created *models.UserDB
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) error {
				created = u
				return nil
			})
		mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token123", nil)
		mockWriter.EXPECT().SetAccessToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Link(context.Background(), nil, testSteamID)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^gaben_[0-9a-f]{8}$`), created.Username)
	})

	t.Run("empty persona uses player base", func(t *testing.T) {
		svc, mockReader, mockWriter, mockTokens, mockSteam := newSteamService(ctrl)

		id := testSteamID
		snapshot := &models.SteamProviderDB{SteamID: &id}

		mockSteam.EXPECT().GetPlayerSummary(gomock.Any(), testSteamID).Return(snapshot, nil)
		mockReader.EXPECT().GetBySteamID(gomock.Any(), testSteamID).Return(nil, nil)
		mockReader.EXPECT().ExistsUsername(gomock.Any(), gomock.Any()).Return(false, nil)

		var created *models.UserDB
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) error {
				created = u
				return nil
			})
		mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token123", nil)
		mockWriter.EXPECT().SetAccessToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Link(context.Background(), nil, testSteamID)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^player_\d+$`), created.Username)
		assert.Equal(t, created.Username, created.DisplayName)
	})
}
