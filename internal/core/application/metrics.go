package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tdex-network/btcqr/internal/core/domain"
)

const metricsNamespace = "btcqr"

type metrics struct {
	generated      *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	renderFailures *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "qr_generated_total",
			Help:      "Number of QR codes successfully generated, by mode.",
		}, []string{"mode"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "input_rejected_total",
			Help:      "Number of generate requests rejected by validation, by mode and reason.",
		}, []string{"mode", "reason"}),
		renderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "render_failures_total",
			Help:      "Number of failed QR rasterizations, by mode and reason.",
		}, []string{"mode", "reason"}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.generated, m.rejected, m.renderFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) incGenerated(mode domain.Mode) {
	m.generated.WithLabelValues(string(mode)).Inc()
}

func (m *metrics) incRejected(mode domain.Mode, reason domain.ErrorKind) {
	m.rejected.WithLabelValues(string(mode), string(reason)).Inc()
}

func (m *metrics) incRenderFailure(mode domain.Mode, reason domain.ErrorKind) {
	m.renderFailures.WithLabelValues(string(mode), string(reason)).Inc()
}
