package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "placementhub", Name: "logins_total", Help: "Identity resolutions by outcome (existing|created|failed)."},
		[]string{"outcome"},
	)
	OpeningsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "placementhub", Name: "openings_created_total", Help: "Openings posted."},
	)
	ApplicationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "placementhub", Name: "applications_created_total", Help: "Applications recorded."},
	)
	ApplicationsDuplicate = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "placementhub", Name: "applications_duplicate_total", Help: "Apply attempts rejected because the pair already held an application."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "placementhub", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "placementhub", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Logins)
	reg.MustRegister(OpeningsCreated)
	reg.MustRegister(ApplicationsCreated)
	reg.MustRegister(ApplicationsDuplicate)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
