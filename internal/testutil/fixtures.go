package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"disasterhub/internal/model"
)

var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique email and password "pw".
func CreateTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: "pw",
		Role:     model.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIncident creates a REPORTED flood incident reported by userID.
func CreateTestIncident(t *testing.T, db *gorm.DB, userID uint) *model.Incident {
	t.Helper()

	incident := &model.Incident{
		Title:        fmt.Sprintf("Flooding %d", nextID()),
		Description:  "Water rising on Main Street",
		Type:         model.IncidentTypeFlood,
		Latitude:     40.7128,
		Longitude:    -74.006,
		Status:       model.IncidentStatusReported,
		ReportedByID: userID,
		ReportedAt:   time.Now().UTC(),
	}
	if err := db.Create(incident).Error; err != nil {
		t.Fatalf("failed to create test incident: %v", err)
	}
	return incident
}

// CreateTestResource creates an AVAILABLE water resource added by userID.
func CreateTestResource(t *testing.T, db *gorm.DB, userID uint) *model.Resource {
	t.Helper()

	resource := &model.Resource{
		Name:        "Bottled water",
		Category:    model.ResourceCategoryWater,
		Quantity:    100,
		Location:    "Depot A",
		Status:      model.ResourceStatusAvailable,
		AddedByID:   userID,
		LastUpdated: time.Now().UTC(),
	}
	if err := db.Create(resource).Error; err != nil {
		t.Fatalf("failed to create test resource: %v", err)
	}
	return resource
}
