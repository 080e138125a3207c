package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry behind /metrics. Besides the runtime
// collectors it exports gymtrack_version_info{version} set to 1.
func SetupPrometheus(version string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if version == "" {
		version = "unknown"
	}
	versionInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "gymtrack",
		Name:        "version_info",
		Help:        "Running gymtrack version.",
		ConstLabels: prometheus.Labels{"version": version},
	})
	versionInfo.Set(1)
	promRegistry.MustRegister(versionInfo)
	promRegistry.MustRegister(extraCollectors...)

	return promRegistry
}
