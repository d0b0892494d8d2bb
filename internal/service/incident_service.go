package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"disasterhub/internal/cache"
	apperrors "disasterhub/internal/errors"
	"disasterhub/internal/metrics"
	"disasterhub/internal/model"
	"disasterhub/internal/repository"
)

// ReportIncidentInput carries the fields a reporter supplies.
type ReportIncidentInput struct {
	Title       string
	Description string
	Type        model.IncidentType
	Latitude    float64
	Longitude   float64
	MediaURL    string
	ReporterID  uint
}

// IncidentService handles incident reporting and the incident history trail.
type IncidentService interface {
	ReportIncident(ctx context.Context, in ReportIncidentInput) (*model.Incident, error)
	LogUpdate(ctx context.Context, incidentID, userID uint, note string) (*model.IncidentHistoryLog, error)
	UpdateStatus(ctx context.Context, incidentID, userID uint, status model.IncidentStatus, note string) (*model.Incident, error)
	GetIncident(ctx context.Context, id uint) (*model.Incident, error)
	ListIncidents(ctx context.Context, filter repository.IncidentFilter) ([]model.Incident, error)
	History(ctx context.Context, incidentID uint) ([]model.IncidentHistoryLog, error)
}

type incidentService struct {
	incidents repository.IncidentRepository
	logs      repository.IncidentHistoryLogRepository
	users     repository.UserRepository
	cache     *cache.Client
	log       logrus.FieldLogger
	now       Clock
}

// NewIncidentService creates a new incident service.
func NewIncidentService(
	incidents repository.IncidentRepository,
	logs repository.IncidentHistoryLogRepository,
	users repository.UserRepository,
	cache *cache.Client,
	log logrus.FieldLogger,
) IncidentService {
	return &incidentService{
		incidents: incidents,
		logs:      logs,
		users:     users,
		cache:     cache,
		log:       log,
		now:       utcNow,
	}
}

// ReportIncident records a new incident. Status is always REPORTED and the
// report time is the server's clock, whatever the caller sent.
func (s *incidentService) ReportIncident(ctx context.Context, in ReportIncidentInput) (*model.Incident, error) {
	log := methodLogger(s.log, "incident", "ReportIncident")

	if err := requireUser(ctx, s.users, in.ReporterID); err != nil {
		return nil, err
	}

	incident := &model.Incident{
		Title:        in.Title,
		Description:  in.Description,
		Type:         in.Type,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		MediaURL:     in.MediaURL,
		Status:       model.IncidentStatusReported,
		ReportedByID: in.ReporterID,
		ReportedAt:   s.now(),
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("create incident: %w", err)
	}

	metrics.IncidentReported(string(incident.Type))
	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"type":        incident.Type,
		"reporter_id": incident.ReportedByID,
	}).Info("incident reported")
	return incident, nil
}

// LogUpdate appends a note to the incident's history. The incident's status is not touched.
func (s *incidentService) LogUpdate(ctx context.Context, incidentID, userID uint, note string) (*model.IncidentHistoryLog, error) {
	if _, err := s.findIncident(ctx, s.incidents, incidentID); err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	entry := &model.IncidentHistoryLog{
		IncidentID:  incidentID,
		UpdatedByID: userID,
		UpdateNote:  note,
		Timestamp:   s.now(),
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	metrics.HistoryEntryAppended()
	return entry, nil
}

// UpdateStatus moves an incident along REPORTED -> ACCEPTED|DECLINED, ACCEPTED -> RESOLVED
// and records the change in its history within one transaction.
func (s *incidentService) UpdateStatus(ctx context.Context, incidentID, userID uint, status model.IncidentStatus, note string) (*model.Incident, error) {
	log := methodLogger(s.log, "incident", "UpdateStatus")

	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", status, apperrors.ErrInvalidTransition)
	}
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	var updated *model.Incident
	err := s.incidents.WithTransaction(ctx, func(ctx context.Context, incidents repository.IncidentRepository, logs repository.IncidentHistoryLogRepository) error {
		incident, err := s.findIncident(ctx, incidents, incidentID)
		if err != nil {
			return err
		}
		from := incident.Status
		if !from.CanTransitionTo(status) {
			return fmt.Errorf("%s -> %s: %w", from, status, apperrors.ErrInvalidTransition)
		}

		ok, err := incidents.CompareAndSetStatus(ctx, incidentID, from, status)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if !ok {
			return fmt.Errorf("incident %d changed concurrently: %w", incidentID, apperrors.ErrInvalidTransition)
		}

		if strings.TrimSpace(note) == "" {
			note = fmt.Sprintf("Status changed from %s to %s", from, status)
		}
		if err := logs.Create(ctx, &model.IncidentHistoryLog{
			IncidentID:  incidentID,
			UpdatedByID: userID,
			UpdateNote:  note,
			FromStatus:  from,
			ToStatus:    status,
			Timestamp:   s.now(),
		}); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		incident.Status = status
		updated = incident
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.IncidentKey(incidentID))
	metrics.IncidentStatusChanged(string(status))
	metrics.HistoryEntryAppended()
	log.WithFields(logrus.Fields{
		"incident_id": incidentID,
		"status":      status,
		"updated_by":  userID,
	}).Info("incident status changed")
	return updated, nil
}

func (s *incidentService) GetIncident(ctx context.Context, id uint) (*model.Incident, error) {
	var cached model.Incident
	if s.cache.GetJSON(ctx, cache.IncidentKey(id), &cached) {
		return &cached, nil
	}

	incident, err := s.findIncident(ctx, s.incidents, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.IncidentKey(id), incident, cache.DefaultTTL)
	return incident, nil
}

func (s *incidentService) ListIncidents(ctx context.Context, filter repository.IncidentFilter) ([]model.Incident, error) {
	incidents, err := s.incidents.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return incidents, nil
}

// History returns the incident's log entries oldest first.
func (s *incidentService) History(ctx context.Context, incidentID uint) ([]model.IncidentHistoryLog, error) {
	if _, err := s.findIncident(ctx, s.incidents, incidentID); err != nil {
		return nil, err
	}
	entries, err := s.logs.ListByIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func (s *incidentService) findIncident(ctx context.Context, repo repository.IncidentRepository, id uint) (*model.Incident, error) {
	incident, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrIncidentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find incident %d: %w", id, err)
	}
	return incident, nil
}
