package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	METRIC_ERROR_COUNT = "error_count"
	METRIC_EVENT_COUNT = "event_count"
)

var (
	counters map[string]prometheus.Counter
	events   *prometheus.CounterVec
)

func Init() {

	// --- Static Metrics: the metrics which are not depended on running configuration

	// Create metric spaces
	counters = make(map[string]prometheus.Counter)

	// Register metrics
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stakepool",
		Subsystem: "driver",
		Name:      METRIC_ERROR_COUNT,
		Help:      "Counts the number of failed operations",
	})
	prometheus.MustRegister(counter)
	counters[METRIC_ERROR_COUNT] = counter

	events = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stakepool",
		Subsystem: "driver",
		Name:      METRIC_EVENT_COUNT,
		Help:      "Counts emitted pool events by name",
	}, []string{"name"})
	prometheus.MustRegister(events)
}

func GetCounter(name string) prometheus.Counter {
	return counters[name]
}

func IncErrorCount() {
	counters[METRIC_ERROR_COUNT].Inc()
}

func IncEventCount(name string) {
	events.WithLabelValues(name).Inc()
}
