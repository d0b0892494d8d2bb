package model

import "time"

// AvailabilityStatus tells coordinators whether a volunteer can take work.
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "AVAILABLE"
	AvailabilityBusy        AvailabilityStatus = "BUSY"
	AvailabilityUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// Valid reports whether a is a known availability status.
func (a AvailabilityStatus) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// VolunteerProfile extends a User who volunteers. At most one exists per user.
type VolunteerProfile struct {
	ID             uint               `json:"id" gorm:"primaryKey"`
	UserID         uint               `json:"user_id" gorm:"uniqueIndex;not null"`
	Skills         string             `json:"skills" gorm:"type:text"`
	Availability   AvailabilityStatus `json:"availability_status" gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	CompletedTasks int                `json:"completed_tasks" gorm:"not null;default:0"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
