package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "disasterhub/internal/errors"
	"disasterhub/internal/logger"
	"disasterhub/internal/model"
)

func TestVolunteerService_CreateProfile(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockVolunteerProfileRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name: "new profile",
			setupMock: func(p *MockVolunteerProfileRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
				p.On("FindByUserID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
				p.On("Create", mock.Anything, mock.AnythingOfType("*model.VolunteerProfile")).Return(nil)
			},
		},
		{
			name: "profile already exists",
			setupMock: func(p *MockVolunteerProfileRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
				p.On("FindByUserID", mock.Anything, uint(5)).Return(&model.VolunteerProfile{UserID: 5}, nil)
			},
			expectedError: apperrors.ErrProfileExists,
		},
		{
			name: "concurrent duplicate insert",
			setupMock: func(p *MockVolunteerProfileRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
				p.On("FindByUserID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
				p.On("Create", mock.Anything, mock.AnythingOfType("*model.VolunteerProfile")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrProfileExists,
		},
		{
			name: "unknown user",
			setupMock: func(p *MockVolunteerProfileRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(MockVolunteerProfileRepository)
			users := new(MockUserRepository)
			tt.setupMock(profiles, users)

			svc := NewVolunteerService(profiles, users, logger.Discard())
			profile, err := svc.CreateProfile(context.Background(), 5, "first aid, driving")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, profile)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.AvailabilityAvailable, profile.Availability)
				assert.Equal(t, 0, profile.CompletedTasks)
				assert.Equal(t, "first aid, driving", profile.Skills)
			}
			profiles.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestVolunteerService_IncrementCompletedTasks(t *testing.T) {
	profiles := new(MockVolunteerProfileRepository)
	profiles.On("IncrementCompletedTasks", mock.Anything, uint(5)).Return(nil)
	profiles.On("FindByUserID", mock.Anything, uint(5)).Return(&model.VolunteerProfile{UserID: 5, CompletedTasks: 3}, nil)
	profiles.On("IncrementCompletedTasks", mock.Anything, uint(6)).Return(gorm.ErrRecordNotFound)

	svc := NewVolunteerService(profiles, new(MockUserRepository), logger.Discard())

	profile, err := svc.IncrementCompletedTasks(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, profile.CompletedTasks)

	_, err = svc.IncrementCompletedTasks(context.Background(), 6)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	profiles.AssertExpectations(t)
}

func TestVolunteerService_UpdateAvailability(t *testing.T) {
	profiles := new(MockVolunteerProfileRepository)
	profiles.On("FindByUserID", mock.Anything, uint(5)).Return(&model.VolunteerProfile{UserID: 5, Availability: model.AvailabilityAvailable}, nil)
	profiles.On("UpdateAvailability", mock.Anything, uint(5), model.AvailabilityBusy).Return(nil)
	profiles.On("FindByUserID", mock.Anything, uint(6)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewVolunteerService(profiles, new(MockUserRepository), logger.Discard())

	profile, err := svc.UpdateAvailability(context.Background(), 5, model.AvailabilityBusy)
	require.NoError(t, err)
	assert.Equal(t, model.AvailabilityBusy, profile.Availability)

	_, err = svc.UpdateAvailability(context.Background(), 6, model.AvailabilityBusy)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	profiles.AssertExpectations(t)
}
