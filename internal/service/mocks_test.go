package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"disasterhub/internal/model"
	"disasterhub/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockIncidentRepository is a mock implementation of IncidentRepository.
// WithTransaction runs the callback against the mock itself and Logs.
type MockIncidentRepository struct {
	mock.Mock
	Logs *MockIncidentHistoryLogRepository
}

func (m *MockIncidentRepository) Create(ctx context.Context, incident *model.Incident) error {
	args := m.Called(ctx, incident)
	if args.Error(0) == nil {
		incident.ID = 10
	}
	return args.Error(0)
}

func (m *MockIncidentRepository) FindByID(ctx context.Context, id uint) (*model.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Incident), args.Error(1)
}

func (m *MockIncidentRepository) List(ctx context.Context, filter repository.IncidentFilter) ([]model.Incident, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Incident), args.Error(1)
}

func (m *MockIncidentRepository) CompareAndSetStatus(ctx context.Context, id uint, from, to model.IncidentStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockIncidentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, incidents repository.IncidentRepository, logs repository.IncidentHistoryLogRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m, m.Logs)
}

// MockIncidentHistoryLogRepository is a mock implementation of IncidentHistoryLogRepository.
type MockIncidentHistoryLogRepository struct {
	mock.Mock
}

func (m *MockIncidentHistoryLogRepository) Create(ctx context.Context, log *model.IncidentHistoryLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockIncidentHistoryLogRepository) ListByIncident(ctx context.Context, incidentID uint) ([]model.IncidentHistoryLog, error) {
	args := m.Called(ctx, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IncidentHistoryLog), args.Error(1)
}

// MockResourceRepository is a mock implementation of ResourceRepository.
type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) Update(ctx context.Context, resource *model.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) FindByID(ctx context.Context, id uint) (*model.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceRepository) List(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

// MockVolunteerProfileRepository is a mock implementation of VolunteerProfileRepository.
type MockVolunteerProfileRepository struct {
	mock.Mock
}

func (m *MockVolunteerProfileRepository) Create(ctx context.Context, profile *model.VolunteerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockVolunteerProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.VolunteerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerProfileRepository) List(ctx context.Context, availability model.AvailabilityStatus) ([]model.VolunteerProfile, error) {
	args := m.Called(ctx, availability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerProfileRepository) UpdateAvailability(ctx context.Context, userID uint, status model.AvailabilityStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

func (m *MockVolunteerProfileRepository) IncrementCompletedTasks(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
