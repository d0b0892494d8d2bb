package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disasterhub/internal/model"
	"disasterhub/internal/testutil"
)

func TestIncidentRepository_List_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewIncidentRepository(db)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db)
	bob := testutil.CreateTestUser(t, db)
	flood := testutil.CreateTestIncident(t, db, alice.ID)
	fire := &model.Incident{
		Title: "Apartment Fire", Type: model.IncidentTypeFire, Status: model.IncidentStatusAccepted,
		ReportedByID: bob.ID, ReportedAt: time.Now().UTC().Add(time.Minute),
	}
	require.NoError(t, repo.Create(ctx, fire))

	all, err := repo.List(ctx, IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, fire.ID, all[0].ID, "newest first")

	byReporter, err := repo.List(ctx, IncidentFilter{ReportedByID: alice.ID})
	require.NoError(t, err)
	require.Len(t, byReporter, 1)
	assert.Equal(t, flood.ID, byReporter[0].ID)

	byStatus, err := repo.List(ctx, IncidentFilter{Status: model.IncidentStatusAccepted})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, fire.ID, byStatus[0].ID)

	byType, err := repo.List(ctx, IncidentFilter{Type: model.IncidentTypeEarthquake})
	require.NoError(t, err)
	assert.Empty(t, byType)
}

func TestIncidentRepository_CompareAndSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewIncidentRepository(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	incident := testutil.CreateTestIncident(t, db, user.ID)

	ok, err := repo.CompareAndSetStatus(ctx, incident.ID, model.IncidentStatusReported, model.IncidentStatusAccepted)
	require.NoError(t, err)
	assert.True(t, ok)

	// stale expectation
	ok, err = repo.CompareAndSetStatus(ctx, incident.ID, model.IncidentStatusReported, model.IncidentStatusDeclined)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, model.IncidentStatusAccepted, got.Status)
}

func TestIncidentRepository_WithTransaction_RollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewIncidentRepository(db)
	logs := NewIncidentHistoryLogRepository(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	incident := testutil.CreateTestIncident(t, db, user.ID)
	boom := errors.New("boom")

	err := repo.WithTransaction(ctx, func(ctx context.Context, incidents IncidentRepository, history IncidentHistoryLogRepository) error {
		if _, err := incidents.CompareAndSetStatus(ctx, incident.ID, model.IncidentStatusReported, model.IncidentStatusDeclined); err != nil {
			return err
		}
		if err := history.Create(ctx, &model.IncidentHistoryLog{
			IncidentID: incident.ID, UpdatedByID: user.ID, UpdateNote: "declined", Timestamp: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.FindByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, model.IncidentStatusReported, got.Status)

	entries, err := logs.ListByIncident(ctx, incident.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIncidentHistoryLogRepository_CreationOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logs := NewIncidentHistoryLogRepository(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	incident := testutil.CreateTestIncident(t, db, user.ID)
	other := testutil.CreateTestIncident(t, db, user.ID)

	// identical timestamps fall back to insertion order
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, note := range []string{"first", "second", "third"} {
		require.NoError(t, logs.Create(ctx, &model.IncidentHistoryLog{
			IncidentID: incident.ID, UpdatedByID: user.ID, UpdateNote: note, Timestamp: ts,
		}))
	}
	require.NoError(t, logs.Create(ctx, &model.IncidentHistoryLog{
		IncidentID: other.ID, UpdatedByID: user.ID, UpdateNote: "elsewhere", Timestamp: ts,
	}))

	entries, err := logs.ListByIncident(ctx, incident.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].UpdateNote)
	assert.Equal(t, "second", entries[1].UpdateNote)
	assert.Equal(t, "third", entries[2].UpdateNote)
}
