package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"disasterhub/internal/cache"
	apperrors "disasterhub/internal/errors"
	"disasterhub/internal/metrics"
	"disasterhub/internal/model"
	"disasterhub/internal/repository"
)

// UserService exposes user directory operations.
type UserService interface {
	CreateUser(ctx context.Context, email, password, name string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
	log   logrus.FieldLogger
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client, log logrus.FieldLogger) UserService {
	return &userService{repo: repo, cache: cache, log: log}
}

// CreateUser registers a new user. The email must not be registered yet.
// Passwords are stored as given.
func (s *userService) CreateUser(ctx context.Context, email, password, name string, role model.Role) (*model.User, error) {
	log := methodLogger(s.log, "user", "CreateUser")

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailInUse
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user := &model.User{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.UserRegistered()
	log.WithField("user_id", user.ID).Info("user created")
	return user, nil
}

// Login succeeds only when a user with exactly this email exists and the
// stored password equals password byte for byte.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.LoginAttempt("failure")
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Password != password {
		metrics.LoginAttempt("failure")
		return nil, apperrors.ErrInvalidCredentials
	}

	metrics.LoginAttempt("success")
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, cache.UserKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	s.cache.SetJSON(ctx, cache.UserKey(id), user, cache.DefaultTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// requireUser maps a missing user to ErrUserNotFound.
func requireUser(ctx context.Context, repo repository.UserRepository, id uint) error {
	if _, err := repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user %d: %w", id, err)
	}
	return nil
}
