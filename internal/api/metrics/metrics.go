// Package metrics defines all custom Prometheus metrics for the club-site
// API. It is the single source of truth for metric names, labels, and help
// strings; counters register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "anlocid"

// ArticlesWrittenTotal counts article persistence operations.
// Label:
//   - action: "create", "update", or "delete"
var ArticlesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_written_total",
		Help:      "Total number of article create, update, and delete operations.",
	},
	[]string{"action"},
)

// MembersRegisteredTotal counts accepted membership applications.
var MembersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_registered_total",
		Help:      "Total number of membership applications accepted.",
	},
)

// MemberStatusTransitionsTotal counts approval-workflow decisions.
// Label:
//   - status: the status applied ("pending", "approved", "rejected")
var MemberStatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "member_status_transitions_total",
		Help:      "Total number of member status updates, by resulting status.",
	},
	[]string{"status"},
)

// UploadsTotal counts stored image uploads.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of images stored in the upload bucket.",
	},
)

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)
