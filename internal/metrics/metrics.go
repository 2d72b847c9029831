package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Click action outcomes.
const (
	OutcomeDispatched = "dispatched"
	OutcomeUnmatched  = "unmatched"
	OutcomeIgnored    = "ignored"
	OutcomePanicked   = "panicked"
)

// Gauges
var (
	RegisteredActions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "unidialog_registered_actions",
		Help: "Number of custom click actions currently registered, summed over all dialog managers",
	})
	ActivePeers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "unidialog_active_peers",
		Help: "Number of connected peer sessions",
	})
)

// Counters
var (
	ClickActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unidialog_click_actions_total",
		Help: "Custom click action packets seen by the dialog listener, by outcome",
	}, []string{"outcome"})
	ListenerInstallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unidialog_listener_installs_total",
		Help: "Times the dialog packet listener was installed",
	})
	DialogClearsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unidialog_dialog_clears_total",
		Help: "Clear dialog requests by wire phase and result",
	}, []string{"phase", "result"})
	PeersRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unidialog_peers_rejected_total",
		Help: "Peer sessions rejected due to the peer cap",
	})
)

// Histograms
var (
	DispatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "unidialog_dispatch_duration_seconds",
		Help:    "Time spent inside custom click action handlers",
		Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	})
)
