package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "disasterhub/internal/errors"
	"disasterhub/internal/model"
	"disasterhub/internal/repository"
	"disasterhub/internal/service"
)

//go:embed seed.json
var defaultFixture []byte

// Fixture is the demo data set loaded by the seed command.
type Fixture struct {
	Users      []SeedUser      `json:"users"`
	Incidents  []SeedIncident  `json:"incidents"`
	Resources  []SeedResource  `json:"resources"`
	Volunteers []SeedVolunteer `json:"volunteers"`
}

type SeedUser struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role"`
}

// SeedIncident is reported by Reporter and then walked to Status by HandledBy.
type SeedIncident struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Type        model.IncidentType   `json:"type"`
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	Reporter    string               `json:"reporter"`
	Status      model.IncidentStatus `json:"status"`
	HandledBy   string               `json:"handled_by"`
}

type SeedResource struct {
	Name     string                 `json:"name"`
	Category model.ResourceCategory `json:"category"`
	Quantity int                    `json:"quantity"`
	Location string                 `json:"location"`
	AddedBy  string                 `json:"added_by"`
}

type SeedVolunteer struct {
	Email  string `json:"email"`
	Skills string `json:"skills"`
}

// Stats counts what a seed run created and what already existed.
type Stats struct {
	Created int
	Skipped int
}

// loadFixture reads the fixture from source: empty means the embedded
// default, an http(s) URL is fetched, anything else is a file path.
func loadFixture(source string) (*Fixture, error) {
	var (
		body []byte
		err  error
	)
	switch {
	case source == "":
		body = defaultFixture
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		body, err = fetchFixture(source)
	default:
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}
	return parseFixture(body)
}

func parseFixture(body []byte) (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &f, nil
}

func fetchFixture(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fixture source returned status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// Seeder writes a Fixture through the service layer so seeded rows obey the
// same rules, history entries and metrics as API traffic.
type Seeder struct {
	Users      repository.UserRepository
	UserSvc    service.UserService
	Incidents  service.IncidentService
	Resources  service.ResourceService
	Volunteers service.VolunteerService
	Log        logrus.FieldLogger
}

// newSeeder wires the service layer without redis; the services treat a
// nil cache as a miss.
func newSeeder(gormDB *gorm.DB, log logrus.FieldLogger) *Seeder {
	userRepo := repository.NewUserRepository(gormDB)
	return &Seeder{
		Users:   userRepo,
		UserSvc: service.NewUserService(userRepo, nil, log),
		Incidents: service.NewIncidentService(
			repository.NewIncidentRepository(gormDB),
			repository.NewIncidentHistoryLogRepository(gormDB),
			userRepo, nil, log,
		),
		Resources:  service.NewResourceService(repository.NewResourceRepository(gormDB), userRepo, log),
		Volunteers: service.NewVolunteerService(repository.NewVolunteerProfileRepository(gormDB), userRepo, log),
		Log:        log,
	}
}

// Run seeds users first since every other record references one by email.
// Re-running against a seeded database only counts skips.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Stats, error) {
	var stats Stats
	steps := []func(context.Context, *Fixture, *Stats) error{
		s.seedUsers,
		s.seedVolunteers,
		s.seedIncidents,
		s.seedResources,
	}
	for _, step := range steps {
		if err := step(ctx, f, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (s *Seeder) seedUsers(ctx context.Context, f *Fixture, stats *Stats) error {
	for _, u := range f.Users {
		_, err := s.UserSvc.CreateUser(ctx, u.Email, u.Password, u.Name, u.Role)
		if errors.Is(err, apperrors.ErrEmailInUse) {
			s.Log.WithField("email", u.Email).Debug("user exists, skipping")
			stats.Skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("error creating user %s: %w", u.Email, err)
		}
		stats.Created++
	}
	return nil
}

func (s *Seeder) seedVolunteers(ctx context.Context, f *Fixture, stats *Stats) error {
	for _, v := range f.Volunteers {
		user, err := s.userID(ctx, v.Email)
		if err != nil {
			return err
		}
		_, err = s.Volunteers.CreateProfile(ctx, user, v.Skills)
		if errors.Is(err, apperrors.ErrProfileExists) {
			stats.Skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("error creating volunteer profile %s: %w", v.Email, err)
		}
		stats.Created++
	}
	return nil
}

func (s *Seeder) seedIncidents(ctx context.Context, f *Fixture, stats *Stats) error {
	for _, inc := range f.Incidents {
		reporter, err := s.userID(ctx, inc.Reporter)
		if err != nil {
			return err
		}
		existing, err := s.Incidents.ListIncidents(ctx, repository.IncidentFilter{ReportedByID: reporter})
		if err != nil {
			return fmt.Errorf("error listing incidents: %w", err)
		}
		if containsTitle(existing, inc.Title) {
			stats.Skipped++
			continue
		}

		created, err := s.Incidents.ReportIncident(ctx, service.ReportIncidentInput{
			Title:       inc.Title,
			Description: inc.Description,
			Type:        inc.Type,
			Latitude:    inc.Latitude,
			Longitude:   inc.Longitude,
			ReporterID:  reporter,
		})
		if err != nil {
			return fmt.Errorf("error reporting incident %q: %w", inc.Title, err)
		}
		stats.Created++

		path := statusPath(inc.Status)
		if len(path) == 0 {
			continue
		}
		handler, err := s.userID(ctx, inc.HandledBy)
		if err != nil {
			return err
		}
		for _, next := range path {
			if _, err := s.Incidents.UpdateStatus(ctx, created.ID, handler, next, ""); err != nil {
				return fmt.Errorf("error moving incident %q to %s: %w", inc.Title, next, err)
			}
			if next == model.IncidentStatusResolved {
				if _, err := s.Volunteers.IncrementCompletedTasks(ctx, handler); err != nil &&
					!errors.Is(err, apperrors.ErrProfileNotFound) {
					return fmt.Errorf("error crediting volunteer %s: %w", inc.HandledBy, err)
				}
			}
		}
	}
	return nil
}

func (s *Seeder) seedResources(ctx context.Context, f *Fixture, stats *Stats) error {
	existing, err := s.Resources.ListResources(ctx, repository.ResourceFilter{})
	if err != nil {
		return fmt.Errorf("error listing resources: %w", err)
	}
	names := make(map[string]bool, len(existing))
	for _, r := range existing {
		names[r.Name] = true
	}

	for _, r := range f.Resources {
		if names[r.Name] {
			stats.Skipped++
			continue
		}
		addedBy, err := s.userID(ctx, r.AddedBy)
		if err != nil {
			return err
		}
		if _, err := s.Resources.AddResource(ctx, service.AddResourceInput{
			Name:      r.Name,
			Category:  r.Category,
			Quantity:  r.Quantity,
			Location:  r.Location,
			AddedByID: addedBy,
		}); err != nil {
			return fmt.Errorf("error adding resource %q: %w", r.Name, err)
		}
		names[r.Name] = true
		stats.Created++
	}
	return nil
}

func (s *Seeder) userID(ctx context.Context, email string) (uint, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("fixture references unknown user %q: %w", email, err)
	}
	return user.ID, nil
}

// statusPath lists the transitions that take a fresh incident to target.
func statusPath(target model.IncidentStatus) []model.IncidentStatus {
	switch target {
	case model.IncidentStatusAccepted:
		return []model.IncidentStatus{model.IncidentStatusAccepted}
	case model.IncidentStatusDeclined:
		return []model.IncidentStatus{model.IncidentStatusDeclined}
	case model.IncidentStatusResolved:
		return []model.IncidentStatus{model.IncidentStatusAccepted, model.IncidentStatusResolved}
	default:
		return nil
	}
}

func containsTitle(incidents []model.Incident, title string) bool {
	for _, inc := range incidents {
		if inc.Title == title {
			return true
		}
	}
	return false
}
