// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tamzrod/sci-battery-monitor/internal/poller"
)

// NewRegistry creates a registry with the standard Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler returns the Prometheus HTTP handler for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// PollMetrics tracks poll outcomes and the last decoded battery values.
// It is a poller.Sink.
type PollMetrics struct {
	Cycles       *prometheus.CounterVec // labels: result=ok|framing_error
	WriteErrors  prometheus.Counter
	ReadErrors   prometheus.Counter
	MissingBytes prometheus.Counter

	Voltage     prometheus.Gauge
	Current     prometheus.Gauge
	Temperature prometheus.Gauge
	Charge      prometheus.Gauge
	Capacity    prometheus.Gauge
	State       prometheus.Gauge
}

// NewPollMetrics registers and returns the poll metrics.
func NewPollMetrics(reg prometheus.Registerer) *PollMetrics {
	m := &PollMetrics{
		Cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sci_poll_cycles_total",
			Help: "Poll cycles by outcome.",
		}, []string{"result"}),
		WriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sci_write_errors_total",
			Help: "Requests that failed or were truncated on write.",
		}),
		ReadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sci_read_errors_total",
			Help: "Transport errors while reading a response.",
		}),
		MissingBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sci_missing_bytes_total",
			Help: "Response bytes missing from incomplete frames.",
		}),
		Voltage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sci_battery_voltage_millivolts",
			Help: "Last battery voltage.",
		}),
		Current: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sci_battery_current_milliamps",
			Help: "Last battery current; negative while discharging.",
		}),
		Temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sci_battery_temperature_celsius",
			Help: "Last battery temperature.",
		}),
		Charge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sci_battery_charge_mah",
			Help: "Last battery charge.",
		}),
		Capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sci_battery_capacity_mah",
			Help: "Last battery capacity.",
		}),
		State: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sci_battery_charge_state",
			Help: "Last raw charging state code.",
		}),
	}
	reg.MustRegister(
		m.Cycles, m.WriteErrors, m.ReadErrors, m.MissingBytes,
		m.Voltage, m.Current, m.Temperature, m.Charge, m.Capacity, m.State,
	)
	return m
}

func (m *PollMetrics) Report(res poller.PollResult) {
	if res.WriteErr != nil {
		m.WriteErrors.Inc()
	}
	if res.ReadErr != nil {
		m.ReadErrors.Inc()
	}

	s := res.Sample
	if s == nil {
		m.Cycles.WithLabelValues("framing_error").Inc()
		m.MissingBytes.Add(float64(res.Missing))
		return
	}

	m.Cycles.WithLabelValues("ok").Inc()
	m.Voltage.Set(float64(s.VoltageMV))
	m.Current.Set(float64(s.CurrentMA))
	m.Temperature.Set(float64(s.TemperatureC))
	m.Charge.Set(float64(s.ChargeMAh))
	m.Capacity.Set(float64(s.CapacityMAh))
	m.State.Set(float64(s.State))
}
