package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LeadSubmissions counts submission pipeline outcomes:
	// accepted, bot_filtered, invalid, duplicate, store_error.
	LeadSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanhelp_lead_submissions_total",
		Help: "Lead submission outcomes",
	}, []string{"outcome"})

	// LeadEmails counts notification dispatch attempts by kind
	// (notification, auto_reply) and status (sent, failed).
	LeadEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanhelp_lead_emails_total",
		Help: "Lead email dispatch attempts",
	}, []string{"kind", "status"})
)
