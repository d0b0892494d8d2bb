package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "disasterhub_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "disasterhub_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	usersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "disasterhub_users_registered_total",
		Help: "Count of successfully created users",
	})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "disasterhub_login_attempts_total",
		Help: "Count of login attempts by result",
	}, []string{"result"})

	incidentsReported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "disasterhub_incidents_reported_total",
		Help: "Count of reported incidents by type",
	}, []string{"type"})

	incidentStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "disasterhub_incident_status_changes_total",
		Help: "Count of incident status transitions by target status",
	}, []string{"status"})

	historyEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "disasterhub_incident_history_entries_total",
		Help: "Count of appended incident history entries",
	})

	resourcesAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "disasterhub_resources_added_total",
		Help: "Count of registered resources by category",
	}, []string{"category"})

	volunteerTasksCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "disasterhub_volunteer_tasks_completed_total",
		Help: "Count of completed volunteer tasks",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func UserRegistered() { usersRegistered.Inc() }

// LoginAttempt records a login with result "success" or "failure".
func LoginAttempt(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

func IncidentReported(incidentType string) {
	incidentsReported.WithLabelValues(incidentType).Inc()
}

func IncidentStatusChanged(status string) {
	incidentStatusChanges.WithLabelValues(status).Inc()
}

func HistoryEntryAppended() { historyEntries.Inc() }

func ResourceAdded(category string) {
	resourcesAdded.WithLabelValues(category).Inc()
}

func VolunteerTaskCompleted() { volunteerTasksCompleted.Inc() }
