package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/fire_risk_alert/internal/config"
	"github.com/shenikar/fire_risk_alert/internal/models"
	"github.com/shenikar/fire_risk_alert/internal/service"
	"github.com/shenikar/fire_risk_alert/internal/service/mocks"
)

// newTestAuthService создает сервис аутентификации с мокированным репозиторием
func newTestAuthService(t *testing.T) (service.AuthService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  24 * time.Hour,
	}

	return service.NewAuthService(mockRepo, logger, cfg), mockRepo
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, mockRepo := newTestAuthService(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			// В бд должен попасть bcrypt-хэш, а не сам пароль
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
			user.ID = userID
			user.CreatedAt = time.Now()
			return nil
		}).Times(1)

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	err := svc.Register(context.Background(), user, "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestRegister_RepositoryError(t *testing.T) {
	svc, mockRepo := newTestAuthService(t)

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("duplicate email")).Times(1)

	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	err := svc.Register(context.Background(), user, "secret123")
	require.Error(t, err)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, mockRepo := newTestAuthService(t)
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           userID,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(storedUser, nil).Times(1)

	token, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// user_id в токене должен совпадать с id сохраненного пользователя
	parsedID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockRepo := newTestAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(storedUser, nil).Times(1)

	token, err := svc.Login(context.Background(), "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockRepo := newTestAuthService(t)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, errors.New("user not found")).Times(1)

	token, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestParseToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken("not-a-jwt")
	require.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc, _ := newTestAuthService(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	storedUser := &models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hash)}

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(storedUser, nil).Times(1)

	// Токен, подписанный другим секретом, не должен проходить проверку
	otherSvc := service.NewAuthService(repo, logger, &config.Config{JWTSecret: "other-secret", TokenTTL: time.Hour})
	token, err := otherSvc.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.Error(t, err)
}

func TestGetUser_Success(t *testing.T) {
	svc, mockRepo := newTestAuthService(t)
	userID := uuid.New()
	storedUser := &models.User{ID: userID, Name: "Alice", Email: "alice@example.com"}

	mockRepo.EXPECT().GetByID(gomock.Any(), userID).Return(storedUser, nil).Times(1)

	user, err := svc.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, mockRepo := newTestAuthService(t)
	userID := uuid.New()

	mockRepo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("user not found")).Times(1)

	_, err := svc.GetUser(context.Background(), userID)
	require.Error(t, err)
}
