package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "church_events"

var (
	registrationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_created_total",
			Help:      "Registrations created, by the status they were admitted with.",
		},
		[]string{"status"},
	)
	registrationStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registration_status_changes_total",
			Help:      "Admin status changes, by target status and outcome.",
		},
		[]string{"status", "outcome"},
	)
	registrationsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_deleted_total",
			Help:      "Registrations removed by an admin.",
		},
	)
)

var registerMetrics sync.Once

// Register adds the collectors to the default registry. Safe to call twice.
func Register() {
	registerMetrics.Do(func() {
		prometheus.MustRegister(registrationsCreated)
		prometheus.MustRegister(registrationStatusChanges)
		prometheus.MustRegister(registrationsDeleted)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordRegistrationCreated(status string) {
	registrationsCreated.WithLabelValues(status).Inc()
}

// RecordStatusChange counts an attempted status change; outcome is "ok",
// "capacity_exceeded" or "error".
func RecordStatusChange(status, outcome string) {
	registrationStatusChanges.WithLabelValues(status, outcome).Inc()
}

func RecordRegistrationDeleted() {
	registrationsDeleted.Inc()
}
