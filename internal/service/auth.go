package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/shenikar/fire_risk_alert/internal/config"
	"github.com/shenikar/fire_risk_alert/internal/models"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
// Хендлер переводит ее в 401, не раскрывая, что именно не совпало.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserRepository определяет контракт для работы с бд пользователей
//
//go:generate mockgen -source=auth.go -destination=mocks/mock_auth.go -package=mocks
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthService определяет контракт регистрации и аутентификации пользователей
type AuthService interface {
	Register(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(tokenStr string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Claims - полезная нагрузка JWT
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

type authService struct {
	repo      UserRepository
	logger    *logrus.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(repo UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  cfg.TokenTTL,
	}
}

// Register хэширует пароль и сохраняет нового пользователя
func (s *authService) Register(ctx context.Context, user *models.User, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   user.Email,
	})
	log.Info("Attempting to register a new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return nil
}

// Login проверяет учетные данные и выдает подписанный JWT
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Login attempt for unknown email")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		log.WithError(err).Error("Failed to sign JWT")
		return "", fmt.Errorf("service: could not sign token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return token, nil
}

// ParseToken проверяет подпись и срок действия токена, возвращает ID пользователя
func (s *authService) ParseToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("service: could not parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("service: invalid token")
	}
	return claims.UserID, nil
}

// GetUser возвращает пользователя по ID
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}
