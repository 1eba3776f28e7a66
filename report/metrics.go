package report

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

// Metrics exposes the last statistic and the best fitness seen as prometheus gauges
type Metrics struct {
	Iterations prometheus.Counter
	Fitness    *prometheus.GaugeVec
	Best       prometheus.Gauge

	best float64
}

// NewMetrics registers the collectors on reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jgenetics_iterations_total",
			Help: "Number of evaluated populations.",
		}),
		Fitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "jgenetics_population_fitness",
			Help: "Fitness statistic of the last evaluated population.",
		}, []string{"statistic"}),
		Best: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "jgenetics_best_fitness",
			Help: "Highest fitness seen during the run.",
		}),
		best: math.Inf(-1),
	}
	for _, c := range []prometheus.Collector{m.Iterations, m.Fitness, m.Best} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Update sets the gauges for the iteration
func (m *Metrics) Update(_ int, s genetic.Statistic) error {
	m.Iterations.Inc()
	if !s.Defined() {
		return nil
	}
	m.Fitness.WithLabelValues("min").Set(s.Min)
	m.Fitness.WithLabelValues("avg").Set(s.Avg)
	m.Fitness.WithLabelValues("max").Set(s.Max)
	if s.Max > m.best {
		m.best = s.Max
		m.Best.Set(s.Max)
	}

	return nil
}
