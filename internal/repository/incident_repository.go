package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"disasterhub/internal/model"
)

// IncidentFilter narrows List results. Zero fields are ignored.
type IncidentFilter struct {
	Status       model.IncidentStatus
	Type         model.IncidentType
	ReportedByID uint
}

// IncidentRepository defines incident persistence operations.
type IncidentRepository interface {
	Create(ctx context.Context, incident *model.Incident) error
	FindByID(ctx context.Context, id uint) (*model.Incident, error)
	List(ctx context.Context, filter IncidentFilter) ([]model.Incident, error)
	// CompareAndSetStatus moves the incident from one status to another and reports
	// whether a row was changed. It changes nothing if the current status differs from from.
	CompareAndSetStatus(ctx context.Context, id uint, from, to model.IncidentStatus) (bool, error)
	// WithTransaction runs fn with incident and history repositories bound to one transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, incidents IncidentRepository, logs IncidentHistoryLogRepository) error) error
}

type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository creates a new incident repository.
func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

// Create creates a new incident.
func (r *incidentRepository) Create(ctx context.Context, incident *model.Incident) error {
	return r.db.WithContext(ctx).Create(incident).Error
}

// FindByID finds an incident by ID.
func (r *incidentRepository) FindByID(ctx context.Context, id uint) (*model.Incident, error) {
	var incident model.Incident
	if err := r.db.WithContext(ctx).First(&incident, id).Error; err != nil {
		return nil, err
	}
	return &incident, nil
}

// List returns incidents matching filter, newest report first.
func (r *incidentRepository) List(ctx context.Context, filter IncidentFilter) ([]model.Incident, error) {
	q := r.db.WithContext(ctx).Model(&model.Incident{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.ReportedByID != 0 {
		q = q.Where("reported_by_id = ?", filter.ReportedByID)
	}

	var incidents []model.Incident
	if err := q.Order("reported_at DESC").Order("id DESC").Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *incidentRepository) CompareAndSetStatus(ctx context.Context, id uint, from, to model.IncidentStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Incident{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// WithTransaction executes a function within a database transaction.
func (r *incidentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, incidents IncidentRepository, logs IncidentHistoryLogRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &incidentRepository{db: tx}, &incidentHistoryLogRepository{db: tx})
	})
}

// IncidentHistoryLogRepository appends to and reads an incident's history.
// There is intentionally no update or delete.
type IncidentHistoryLogRepository interface {
	Create(ctx context.Context, log *model.IncidentHistoryLog) error
	ListByIncident(ctx context.Context, incidentID uint) ([]model.IncidentHistoryLog, error)
}

type incidentHistoryLogRepository struct {
	db *gorm.DB
}

// NewIncidentHistoryLogRepository creates a new history log repository.
func NewIncidentHistoryLogRepository(db *gorm.DB) IncidentHistoryLogRepository {
	return &incidentHistoryLogRepository{db: db}
}

// Create appends a history entry.
func (r *incidentHistoryLogRepository) Create(ctx context.Context, log *model.IncidentHistoryLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByIncident returns entries in creation order.
func (r *incidentHistoryLogRepository) ListByIncident(ctx context.Context, incidentID uint) ([]model.IncidentHistoryLog, error) {
	var logs []model.IncidentHistoryLog
	if err := r.db.WithContext(ctx).
		Where("incident_id = ?", incidentID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}}).
		Order("id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
