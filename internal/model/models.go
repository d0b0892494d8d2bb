package model

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Incident{},
		&IncidentHistoryLog{},
		&Resource{},
		&VolunteerProfile{},
	}
}
