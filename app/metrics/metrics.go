package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GatewayRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sanciones", Name: "gateway_requests_total", Help: "Calls to the remote API",
	}, []string{"operacion"})
	GatewayErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sanciones", Name: "gateway_errors_total", Help: "Failed calls to the remote API",
	}, []string{"operacion"})
	GatewayLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sanciones", Name: "gateway_request_seconds", Help: "Remote API call latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"operacion"})
	Logins = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sanciones", Name: "logins_total", Help: "Login attempts by outcome",
	}, []string{"resultado"})
)

func init() {
	prometheus.MustRegister(GatewayRequests, GatewayErrors, GatewayLatency, Logins)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveGateway(operacion string, d time.Duration) {
	GatewayLatency.WithLabelValues(operacion).Observe(d.Seconds())
}
