package motionmodel

import (
	"github.com/foomo/motionmodel/vo"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	prometheusLabelFormat = "format"
	prometheusLabelStatus = "status"
	prometheusLabelKind   = "kind"

	statusOK    = "ok"
	statusError = "error"
)

type metrics struct {
	summaryVecDuration *prometheus.SummaryVec
	counterVecReads    *prometheus.CounterVec
	counterVecModels   *prometheus.CounterVec
	counterVecErrors   *prometheus.CounterVec
}

// newMetrics registers with reg, a nil reg keeps the collectors unregistered
func newMetrics(reg prometheus.Registerer) (m *metrics, err error) {
	m = &metrics{
		summaryVecDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "motionmodel_read_durations_seconds",
				Help:       "read duration including loading and parsing of all documents of a location",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelFormat},
		),
		counterVecReads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "motionmodel_reads_total",
				Help: "number of read locations",
			},
			[]string{prometheusLabelFormat, prometheusLabelStatus},
		),
		counterVecModels: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "motionmodel_models_total",
				Help: "number of models built",
			},
			[]string{prometheusLabelKind},
		),
		counterVecErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "motionmodel_errors_total",
				Help: "failed reads by error kind",
			},
			[]string{prometheusLabelKind},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.summaryVecDuration,
		m.counterVecReads,
		m.counterVecModels,
		m.counterVecErrors,
	} {
		errRegister := reg.Register(c)
		if errRegister != nil {
			return nil, errRegister
		}
	}
	return m, nil
}

func (m *metrics) track(result vo.Result) {
	format := result.Format
	if format == "" {
		format = "unknown"
	}
	m.summaryVecDuration.WithLabelValues(format).Observe(result.Duration.Seconds())
	if !result.OK() {
		m.counterVecReads.WithLabelValues(format, statusError).Inc()
		kind := string(result.ErrorKind)
		if kind == "" {
			kind = "load"
		}
		m.counterVecErrors.WithLabelValues(kind).Inc()
	} else {
		m.counterVecReads.WithLabelValues(format, statusOK).Inc()
	}
	for _, doc := range result.Documents {
		for _, mdl := range doc.Models {
			m.counterVecModels.WithLabelValues(mdl.Kind()).Inc()
		}
	}
}
