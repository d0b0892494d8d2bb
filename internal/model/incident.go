package model

import "time"

// IncidentType classifies a reported incident.
type IncidentType string

const (
	IncidentTypeFlood      IncidentType = "FLOOD"
	IncidentTypeEarthquake IncidentType = "EARTHQUAKE"
	IncidentTypeFire       IncidentType = "FIRE"
	IncidentTypeHurricane  IncidentType = "HURRICANE"
	IncidentTypeOther      IncidentType = "OTHER"
)

// Valid reports whether t is a known incident type.
func (t IncidentType) Valid() bool {
	switch t {
	case IncidentTypeFlood, IncidentTypeEarthquake, IncidentTypeFire, IncidentTypeHurricane, IncidentTypeOther:
		return true
	}
	return false
}

// IncidentStatus represents the lifecycle state of an incident.
type IncidentStatus string

const (
	IncidentStatusReported IncidentStatus = "REPORTED"
	IncidentStatusAccepted IncidentStatus = "ACCEPTED"
	IncidentStatusDeclined IncidentStatus = "DECLINED"
	IncidentStatusResolved IncidentStatus = "RESOLVED"
)

var incidentTransitions = map[IncidentStatus][]IncidentStatus{
	IncidentStatusReported: {IncidentStatusAccepted, IncidentStatusDeclined},
	IncidentStatusAccepted: {IncidentStatusResolved},
}

// Valid reports whether s is a known incident status.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentStatusReported, IncidentStatusAccepted, IncidentStatusDeclined, IncidentStatusResolved:
		return true
	}
	return false
}

// CanTransitionTo reports whether an incident in status s may move to next.
// DECLINED and RESOLVED are terminal.
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	for _, allowed := range incidentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Incident is an emergency reported by a user.
type Incident struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Title        string         `json:"title" gorm:"size:255;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Type         IncidentType   `json:"type" gorm:"type:varchar(20);not null;index"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	MediaURL     string         `json:"media_url,omitempty" gorm:"size:1024"`
	Status       IncidentStatus `json:"status" gorm:"type:varchar(20);not null;default:'REPORTED';index"`
	ReportedByID uint           `json:"reported_by" gorm:"not null;index"`
	ReportedAt   time.Time      `json:"reported_at" gorm:"not null"`

	// Relations
	ReportedBy User `json:"-" gorm:"foreignKey:ReportedByID"`
}
