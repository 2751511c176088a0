package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tictactoe"

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests to the control API.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Control API request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	movesApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "moves_total",
			Help:      "Accepted moves by origin.",
		},
		[]string{"origin"},
	)
	protocolViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "protocol_violations_total",
			Help:      "Remote messages rejected as protocol violations.",
		},
	)
	peerTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "peer",
			Name:      "state_transitions_total",
			Help:      "Peer session state transitions by target state.",
		},
		[]string{"state"},
	)
	identityAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "identity",
			Name:      "registrations_total",
			Help:      "Identity registration attempts by result.",
		},
		[]string{"result"},
	)
	oracleDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oracle",
			Name:      "decisions_total",
			Help:      "AI moves by the source that produced them.",
		},
		[]string{"source"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			movesApplied,
			protocolViolations,
			peerTransitions,
			identityAttempts,
			oracleDecisions,
		)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordMove(origin string) {
	RegisterMetrics()
	movesApplied.WithLabelValues(origin).Inc()
}

func RecordProtocolViolation() {
	RegisterMetrics()
	protocolViolations.Inc()
}

func RecordPeerState(state string) {
	RegisterMetrics()
	peerTransitions.WithLabelValues(state).Inc()
}

func RecordIdentityAttempt(result string) {
	RegisterMetrics()
	identityAttempts.WithLabelValues(result).Inc()
}

func RecordOracleDecision(source string) {
	RegisterMetrics()
	oracleDecisions.WithLabelValues(source).Inc()
}
