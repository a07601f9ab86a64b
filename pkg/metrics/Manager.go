package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter struct {
	metric *prometheus.CounterVec
}

func (c *Counter) Register() {
	prometheus.MustRegister(c.metric)
}

func (c *Counter) Increment(labels ...string) {
	c.metric.WithLabelValues(labels...).Inc()
}

func (c *Counter) Add(value float64, labels ...string) {
	c.metric.WithLabelValues(labels...).Add(value)
}

func (c *Counter) Get() *prometheus.CounterVec {
	return c.metric
}

type Gauge struct {
	metric *prometheus.GaugeVec
}

func (g *Gauge) Register() {
	prometheus.MustRegister(g.metric)
}

func (g *Gauge) Set(value float64, labels ...string) {
	g.metric.WithLabelValues(labels...).Set(value)
}

func (g *Gauge) Increase(labels ...string) {
	g.metric.WithLabelValues(labels...).Inc()
}

func (g *Gauge) Decrease(labels ...string) {
	g.metric.WithLabelValues(labels...).Dec()
}

func (g *Gauge) Get() *prometheus.GaugeVec {
	return g.metric
}
