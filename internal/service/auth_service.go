package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dbicalho1/TempleCals/internal/dto"
	"github.com/dbicalho1/TempleCals/internal/model"
	"github.com/dbicalho1/TempleCals/internal/repository"
	"github.com/dbicalho1/TempleCals/pkg/jwt"
	"github.com/dbicalho1/TempleCals/pkg/redis"
)

// ── auth errors ──

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must be indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain an uppercase letter, a lowercase letter and a digit")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login and identity resolution.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
	// Logout revokes the token by blacklisting its ID until expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService implementation.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Required fields, first missing one wins.
	switch {
	case email == "":
		return nil, newValidationError("email is required")
	case req.Password == "":
		return nil, newValidationError("password is required")
	case strings.TrimSpace(req.FirstName) == "":
		return nil, newValidationError("first_name is required")
	case strings.TrimSpace(req.LastName) == "":
		return nil, newValidationError("last_name is required")
	}

	if !passwordMeetsPolicy(req.Password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("email lookup failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Email:            email,
		PasswordHash:     string(hash),
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		DailyCalorieGoal: model.DefaultCalorieGoal,
		DailyProteinGoal: model.DefaultProteinGoal,
		DailyCarbGoal:    model.DefaultCarbGoal,
		DailyFatGoal:     model.DefaultFatGoal,
	}
	if req.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *req.DailyCalorieGoal
	}
	if req.DailyProteinGoal != nil {
		user.DailyProteinGoal = *req.DailyProteinGoal
	}
	if req.DailyCarbGoal != nil {
		user.DailyCarbGoal = *req.DailyCarbGoal
	}
	if req.DailyFatGoal != nil {
		user.DailyFatGoal = *req.DailyFatGoal
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// Two concurrent registrations can pass the lookup above; the unique
		// constraint decides, and the loser gets a conflict, not a 500.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		s.logger.Error("creating user failed", zap.Error(err))
		return nil, err
	}

	return s.tokenResponse(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	switch {
	case email == "":
		return nil, newValidationError("email is required")
	case req.Password == "":
		return nil, newValidationError("password is required")
	}

	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("email lookup failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating last_login failed", zap.Error(err))
		return nil, err
	}

	return s.tokenResponse(user)
}

func (s *authService) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Valid token, but the account has since been deleted.
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil // blacklist unavailable, token simply ages out
	}
	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("blacklisting token failed", zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *authService) tokenResponse(user *model.User) (*dto.TokenResponse, error) {
	token, err := s.jwtMgr.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("generating token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TokenTTL().Seconds()),
		User:      *toUserResponse(user),
	}, nil
}

// passwordMeetsPolicy requires at least 8 characters with one uppercase
// letter, one lowercase letter and one digit.
func passwordMeetsPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
