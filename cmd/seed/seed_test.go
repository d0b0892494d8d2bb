package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disasterhub/internal/logger"
	"disasterhub/internal/model"
	"disasterhub/internal/repository"
	"disasterhub/internal/testutil"
)

func TestLoadFixture_Embedded(t *testing.T) {
	f, err := loadFixture("")
	require.NoError(t, err)

	assert.Len(t, f.Users, 3)
	assert.Len(t, f.Incidents, 4)
	assert.Len(t, f.Resources, 3)
	assert.Len(t, f.Volunteers, 1)
	for _, inc := range f.Incidents {
		assert.True(t, inc.Type.Valid(), inc.Title)
		assert.True(t, inc.Status.Valid(), inc.Title)
	}
}

func TestLoadFixture_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":[{"email":"a@b.c","password":"x","name":"A","role":"USER"}]}`), 0o600))

	f, err := loadFixture(path)
	require.NoError(t, err)
	require.Len(t, f.Users, 1)
	assert.Equal(t, model.Role("USER"), f.Users[0].Role)
}

func TestLoadFixture_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":`), 0o600))

	_, err := loadFixture(path)
	assert.Error(t, err)
}

func TestStatusPath(t *testing.T) {
	assert.Empty(t, statusPath(model.IncidentStatusReported))
	assert.Equal(t, []model.IncidentStatus{model.IncidentStatusAccepted}, statusPath(model.IncidentStatusAccepted))
	assert.Equal(t, []model.IncidentStatus{model.IncidentStatusDeclined}, statusPath(model.IncidentStatusDeclined))
	assert.Equal(t,
		[]model.IncidentStatus{model.IncidentStatusAccepted, model.IncidentStatusResolved},
		statusPath(model.IncidentStatusResolved))
}

func TestSeeder_Run(t *testing.T) {
	gormDB := testutil.SetupTestDB(t)
	ctx := context.Background()
	f, err := loadFixture("")
	require.NoError(t, err)

	seeder := newSeeder(gormDB, logger.Discard())
	stats, err := seeder.Run(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 11, stats.Created)
	assert.Zero(t, stats.Skipped)

	incidents, err := seeder.Incidents.ListIncidents(ctx, repository.IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, incidents, 4)
	byTitle := make(map[string]model.Incident)
	for _, inc := range incidents {
		byTitle[inc.Title] = inc
	}
	assert.Equal(t, model.IncidentStatusReported, byTitle["Flash Flood on Main Street"].Status)
	assert.Equal(t, model.IncidentStatusAccepted, byTitle["Apartment Fire on Oak Avenue"].Status)
	assert.Equal(t, model.IncidentStatusResolved, byTitle["Minor Earthquake Damage"].Status)

	history, err := seeder.Incidents.History(ctx, byTitle["Minor Earthquake Damage"].ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.IncidentStatusResolved, history[1].ToStatus)

	jane, err := seeder.Users.FindByEmail(ctx, "volunteer@example.com")
	require.NoError(t, err)
	profile, err := seeder.Volunteers.GetProfile(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CompletedTasks)

	t.Run("second run only skips", func(t *testing.T) {
		again, err := seeder.Run(ctx, f)
		require.NoError(t, err)
		assert.Zero(t, again.Created)
		assert.Equal(t, 11, again.Skipped)
	})
}

func TestSeeder_UnknownUser(t *testing.T) {
	gormDB := testutil.SetupTestDB(t)
	f := &Fixture{Volunteers: []SeedVolunteer{{Email: "ghost@example.com", Skills: "none"}}}

	_, err := newSeeder(gormDB, logger.Discard()).Run(context.Background(), f)
	assert.ErrorContains(t, err, "ghost@example.com")
}
