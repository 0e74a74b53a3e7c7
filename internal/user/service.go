package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Sujaybr27/VPlay/internal/auth"
	"github.com/Sujaybr27/VPlay/internal/email"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

const resetTokenTTL = 30 * time.Minute

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

type service struct {
	repo      Repository
	redis     *redis.Client
	email     *email.Service
	jwtSecret string
}

func NewService(repo Repository, redisClient *redis.Client, emailService *email.Service, jwtSecret string) Service {
	return &service{
		repo:      repo,
		redis:     redisClient,
		email:     emailService,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, RoleMember)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID,
		user.Email,
		user.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID,
		user.Email,
		user.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	newAccessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, user, nil
}

func resetTokenKey(token string) string {
	return "password-reset:" + token
}

// RequestPasswordReset queues a reset email. Unknown addresses are
// silently ignored so the endpoint does not leak who is registered.
func (s *service) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.repo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil
	}

	token := uuid.NewString()
	if err := s.redis.Set(ctx, resetTokenKey(token), user.ID, resetTokenTTL).Err(); err != nil {
		return err
	}

	return s.email.SendPasswordReset(ctx, user.Email, user.Name, token)
}

func (s *service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.redis.Get(ctx, resetTokenKey(token)).Int()
	if err != nil {
		return ErrResetTokenInvalid
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return err
	}

	// Single use.
	s.redis.Del(ctx, resetTokenKey(token))
	return nil
}
