package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "disasterhub/internal/errors"
	"disasterhub/internal/metrics"
	"disasterhub/internal/model"
	"disasterhub/internal/repository"
)

// VolunteerService manages volunteer profiles. Profiles are keyed by user id.
type VolunteerService interface {
	CreateProfile(ctx context.Context, userID uint, skills string) (*model.VolunteerProfile, error)
	GetProfile(ctx context.Context, userID uint) (*model.VolunteerProfile, error)
	ListProfiles(ctx context.Context, availability model.AvailabilityStatus) ([]model.VolunteerProfile, error)
	UpdateAvailability(ctx context.Context, userID uint, status model.AvailabilityStatus) (*model.VolunteerProfile, error)
	IncrementCompletedTasks(ctx context.Context, userID uint) (*model.VolunteerProfile, error)
}

type volunteerService struct {
	profiles repository.VolunteerProfileRepository
	users    repository.UserRepository
	log      logrus.FieldLogger
}

// NewVolunteerService creates a new volunteer service.
func NewVolunteerService(profiles repository.VolunteerProfileRepository, users repository.UserRepository, log logrus.FieldLogger) VolunteerService {
	return &volunteerService{profiles: profiles, users: users, log: log}
}

// CreateProfile attaches a profile to an existing user. A user can have only one.
func (s *volunteerService) CreateProfile(ctx context.Context, userID uint, skills string) (*model.VolunteerProfile, error) {
	log := methodLogger(s.log, "volunteer", "CreateProfile")

	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	existing, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrProfileExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check profile: %w", err)
	}

	profile := &model.VolunteerProfile{
		UserID:         userID,
		Skills:         skills,
		Availability:   model.AvailabilityAvailable,
		CompletedTasks: 0,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProfileExists
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	log.WithField("user_id", userID).Info("volunteer profile created")
	return profile, nil
}

func (s *volunteerService) GetProfile(ctx context.Context, userID uint) (*model.VolunteerProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile for user %d: %w", userID, err)
	}
	return profile, nil
}

func (s *volunteerService) ListProfiles(ctx context.Context, availability model.AvailabilityStatus) ([]model.VolunteerProfile, error) {
	profiles, err := s.profiles.List(ctx, availability)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (s *volunteerService) UpdateAvailability(ctx context.Context, userID uint, status model.AvailabilityStatus) (*model.VolunteerProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.UpdateAvailability(ctx, userID, status); err != nil {
		return nil, fmt.Errorf("update availability: %w", err)
	}
	profile.Availability = status
	return profile, nil
}

// IncrementCompletedTasks adds exactly one completed task and returns the fresh profile.
func (s *volunteerService) IncrementCompletedTasks(ctx context.Context, userID uint) (*model.VolunteerProfile, error) {
	err := s.profiles.IncrementCompletedTasks(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("increment completed tasks: %w", err)
	}

	metrics.VolunteerTaskCompleted()
	return s.GetProfile(ctx, userID)
}
