package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"disasterhub/internal/model"
	"disasterhub/internal/repository"
	"disasterhub/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, email, password, name string, role model.Role) (*model.User, error) {
	args := m.Called(ctx, email, password, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

type MockIncidentService struct {
	mock.Mock
}

func (m *MockIncidentService) ReportIncident(ctx context.Context, in service.ReportIncidentInput) (*model.Incident, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Incident), args.Error(1)
}

func (m *MockIncidentService) LogUpdate(ctx context.Context, incidentID, userID uint, note string) (*model.IncidentHistoryLog, error) {
	args := m.Called(ctx, incidentID, userID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IncidentHistoryLog), args.Error(1)
}

func (m *MockIncidentService) UpdateStatus(ctx context.Context, incidentID, userID uint, status model.IncidentStatus, note string) (*model.Incident, error) {
	args := m.Called(ctx, incidentID, userID, status, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Incident), args.Error(1)
}

func (m *MockIncidentService) GetIncident(ctx context.Context, id uint) (*model.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Incident), args.Error(1)
}

func (m *MockIncidentService) ListIncidents(ctx context.Context, filter repository.IncidentFilter) ([]model.Incident, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Incident), args.Error(1)
}

func (m *MockIncidentService) History(ctx context.Context, incidentID uint) ([]model.IncidentHistoryLog, error) {
	args := m.Called(ctx, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IncidentHistoryLog), args.Error(1)
}

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) AddResource(ctx context.Context, in service.AddResourceInput) (*model.Resource, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceService) UpdateResource(ctx context.Context, id uint, in service.UpdateResourceInput) (*model.Resource, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceService) GetResource(ctx context.Context, id uint) (*model.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceService) ListResources(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

type MockVolunteerService struct {
	mock.Mock
}

func (m *MockVolunteerService) CreateProfile(ctx context.Context, userID uint, skills string) (*model.VolunteerProfile, error) {
	args := m.Called(ctx, userID, skills)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerService) GetProfile(ctx context.Context, userID uint) (*model.VolunteerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerService) ListProfiles(ctx context.Context, availability model.AvailabilityStatus) ([]model.VolunteerProfile, error) {
	args := m.Called(ctx, availability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerService) UpdateAvailability(ctx context.Context, userID uint, status model.AvailabilityStatus) (*model.VolunteerProfile, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerService) IncrementCompletedTasks(ctx context.Context, userID uint) (*model.VolunteerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerProfile), args.Error(1)
}
