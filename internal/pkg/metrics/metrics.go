package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CoordinatorState is the coordinator state: 0 OFF, 1 STARTUP, 2 READY, 3 SHUTDOWN.
	CoordinatorState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lesedi_coordinator_state",
			Help: "Coordinator state (0=OFF, 1=STARTUP, 2=READY, 3=SHUTDOWN).",
		},
	)

	// EmergencyStop is 1 while the interlock is set.
	EmergencyStop = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lesedi_emergency_stop",
			Help: "Whether the emergency stop interlock is set (1) or clear (0).",
		},
	)

	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lesedi_commands_total",
			Help: "Commands handled by the coordinator.",
		},
		[]string{"command", "result"}, // result: success/error
	)

	SequenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lesedi_sequence_duration_seconds",
			Help:    "Duration of startup and shutdown sequences.",
			Buckets: []float64{1, 5, 15, 30, 60, 90, 120, 180, 300},
		},
		[]string{"sequence", "result"},
	)

	DriverRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lesedi_driver_request_duration_seconds",
			Help:    "Round trip time of subsystem driver commands.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"subsystem", "command"},
	)

	DriverErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lesedi_driver_errors_total",
			Help: "Subsystem driver I/O and protocol errors.",
		},
		[]string{"subsystem"},
	)

	ExposuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mookodi_exposures_total",
			Help: "Frames read out by the camera, by exposure type.",
		},
		[]string{"type"}, // bias/dark/exposure
	)

	ReductionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mookodi_pipeline_reductions_total",
			Help: "Frames processed by the reduction pipeline.",
		},
		[]string{"mode", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		CoordinatorState,
		EmergencyStop,
		CommandsTotal,
		SequenceDuration,
		DriverRequestDuration,
		DriverErrorsTotal,
		ExposuresTotal,
		ReductionsTotal,
	)
}
