package services

import (
	"errors"
	"fmt"
	"log/slog"

	"payme/internal/currency"
	"payme/internal/dto"
	"payme/internal/models"
	"payme/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	preferenceRepo  repositories.PreferenceRepositoryInterface
	tokenService    TokenServiceInterface
	passwordService PasswordServiceInterface
	metrics         MetricsRecorderInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	preferenceRepo repositories.PreferenceRepositoryInterface,
	tokenService TokenServiceInterface,
	passwordService PasswordServiceInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		preferenceRepo:  preferenceRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
		metrics:         metrics,
	}
}

// Register creates a new user account with a default currency preference
func (as *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if req == nil {
		return nil, errors.New("register request cannot be nil")
	}

	existing, err := as.userRepo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := as.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := as.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Preference row is best effort, formatter falls back to locale detection
	if err := as.preferenceRepo.UpsertCurrencyCode(user.ID, currency.DefaultCode); err != nil {
		slog.Warn("failed to seed currency preference",
			"user_id", user.ID,
			"error", err)
	}

	if as.metrics != nil {
		as.metrics.IncrementCounter("user.registered", nil)
	}

	slog.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair
func (as *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req == nil {
		return nil, errors.New("login request cannot be nil")
	}

	user, err := as.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Burn a comparison so missing users cost the same as bad passwords
			as.passwordService.ComparePassword(req.Password, dummyPasswordHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !as.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		if as.metrics != nil {
			as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		}
		slog.Warn("failed login attempt", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	tokens, err := as.issueTokens(user)
	if err != nil {
		return nil, err
	}

	if as.metrics != nil {
		as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	}

	slog.Info("user logged in", "user_id", user.ID)
	return tokens, nil
}

// RefreshTokens validates a refresh token and issues a fresh pair.
// Tokens are verified cryptographically, nothing is stored server side.
func (as *AuthService) RefreshTokens(refreshToken string) (*dto.TokenResponse, error) {
	claims, err := as.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	user, err := as.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return as.issueTokens(user)
}

// GetProfile returns the profile of an existing user
func (as *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := as.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func (as *AuthService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := as.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := as.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

// Precomputed bcrypt hash used to equalize response time on unknown usernames
const dummyPasswordHash = "$2a$12$K3JNi5xUf0Krz7cUYIvQvOY1PyO3D3cfSK1TIOWiuNwOrVzQpF36a"
