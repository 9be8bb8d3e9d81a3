// Package metrics exposes Prometheus collectors for the screening service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ats_screener"

var (
	Analyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Résumé analyses by extraction outcome.",
	}, []string{"outcome"})

	ATSScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ats_score",
		Help:      "Distribution of ATS keyword scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})

	JobMatchScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_match_score",
		Help:      "Distribution of TF-IDF job match scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})

	AccountEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_events_total",
		Help:      "Signups and logins by result.",
	}, []string{"event", "result"})

	PoolQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "analysis_queue_depth",
		Help:      "Analyses waiting for a free worker.",
	})
)

const (
	OutcomeOK         = "ok"
	OutcomeUnreadable = "unreadable"
)
