package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Enrollment operations and their outcomes, used as metric label values.
const (
	OperationSignup     = "signup"
	OperationUnregister = "unregister"

	OutcomeSuccess       = "success"
	OutcomeNotFound      = "not_found"
	OutcomeDuplicate     = "duplicate"
	OutcomeFull          = "full"
	OutcomeNotRegistered = "not_registered"
	OutcomeInvalid       = "invalid"
	OutcomeError         = "error"
)

var enrollmentOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mergington",
	Subsystem: "enrollment",
	Name:      "operations_total",
	Help:      "Signup and unregister requests by outcome.",
}, []string{"operation", "outcome"})

func init() {
	prometheus.MustRegister(enrollmentOperations)
}

// RecordEnrollment counts one signup or unregister attempt.
func RecordEnrollment(operation, outcome string) {
	enrollmentOperations.WithLabelValues(operation, outcome).Inc()
}
