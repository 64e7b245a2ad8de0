// Package metrics defines all custom Prometheus metrics for the CreoMotion
// agency API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry via promauto at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "creomotion"

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "staff" or "portal" (which login endpoint was hit)
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by endpoint kind and result.",
	},
	[]string{"kind", "result"},
)

// DeliverableReviewsTotal counts review decisions made by portal clients.
// Label:
//   - status: "APPROVED" or "REJECTED"
var DeliverableReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliverable_reviews_total",
		Help:      "Total number of client review decisions on deliverables.",
	},
	[]string{"status"},
)

// InvoicesIssuedTotal counts invoices created.
var InvoicesIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_issued_total",
		Help:      "Total number of invoices created.",
	},
)

// InvoicePDFRenderDuration measures how long rendering an invoice PDF takes.
var InvoicePDFRenderDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "invoice_pdf_render_duration_seconds",
		Help:      "Duration of invoice PDF rendering.",
		Buckets:   prometheus.DefBuckets,
	},
)
