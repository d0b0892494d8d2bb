package model

import "time"

// IncidentHistoryLog is one entry in an incident's audit trail.
// Rows are only ever inserted; nothing updates or deletes them.
type IncidentHistoryLog struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	IncidentID  uint           `json:"incident_id" gorm:"not null;index"`
	UpdatedByID uint           `json:"updated_by" gorm:"not null;index"`
	UpdateNote  string         `json:"update_note" gorm:"type:text"`
	FromStatus  IncidentStatus `json:"from_status,omitempty" gorm:"type:varchar(20)"`
	ToStatus    IncidentStatus `json:"to_status,omitempty" gorm:"type:varchar(20)"`
	Timestamp   time.Time      `json:"timestamp" gorm:"not null;index"`

	// Relations
	Incident  Incident `json:"-" gorm:"foreignKey:IncidentID"`
	UpdatedBy User     `json:"-" gorm:"foreignKey:UpdatedByID"`
}
