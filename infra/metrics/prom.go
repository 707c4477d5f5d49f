package metrics

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/cosmos-tools/core/metrics"
)

// PromSink records schedule runs as Prometheus gauges. When a textfile path
// is set, every recorded run is flushed to that file in the text exposition
// format, ready for the node_exporter textfile collector.
type PromSink struct {
	gatherer prometheus.Gatherer
	path     string

	periods   *prometheus.GaugeVec
	total     *prometheus.GaugeVec
	release   *prometheus.GaugeVec
	params    *prometheus.GaugeVec
	duration  prometheus.Gauge
	lastRun   prometheus.Gauge
	runInfo   *prometheus.GaugeVec
	truncated prometheus.Gauge
}

// NewTextfileSink registers schedule metrics on a private registry and
// writes them to path after each recorded run.
func NewTextfileSink(path string) (*PromSink, error) {
	if path == "" {
		return nil, errors.New("textfile path is required")
	}
	reg := prometheus.NewRegistry()
	s, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		return nil, err
	}
	s.gatherer = reg
	s.path = path
	return s, nil
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		periods: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vesting_schedule_periods",
			Help: "Number of periods in the last generated schedule",
		}, []string{"command", "policy", "denom"}),
		total: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vesting_schedule_total_amount",
			Help: "Sum of the amounts released by the last generated schedule",
		}, []string{"denom"}),
		release: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vesting_schedule_period_amount",
			Help: "Statistics of the per-period release amounts",
		}, []string{"denom", "stat"}),
		params: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vesting_schedule_parameter_seconds",
			Help: "Time parameters of the last generated schedule",
		}, []string{"parameter"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vesting_schedule_generation_seconds",
			Help: "Time spent computing the last schedule",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vesting_schedule_last_run_timestamp_seconds",
			Help: "Unix time of the last generated schedule",
		}),
		runInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vesting_schedule_run_info",
			Help: "Identifier of the last schedule generation run",
		}, []string{"run_id"}),
		truncated: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vesting_schedule_truncated",
			Help: "1 when the duration is not a multiple of the interval",
		}),
	}
	var err error
	if s.periods, err = register(reg, s.periods); err != nil {
		return nil, err
	}
	if s.total, err = register(reg, s.total); err != nil {
		return nil, err
	}
	if s.release, err = register(reg, s.release); err != nil {
		return nil, err
	}
	if s.params, err = register(reg, s.params); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, s.duration); err != nil {
		return nil, err
	}
	if s.lastRun, err = register(reg, s.lastRun); err != nil {
		return nil, err
	}
	if s.runInfo, err = register(reg, s.runInfo); err != nil {
		return nil, err
	}
	if s.truncated, err = register(reg, s.truncated); err != nil {
		return nil, err
	}
	return s, nil
}

// register reuses an already registered collector of the same description.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSchedule updates the gauges and flushes the textfile when configured.
func (s *PromSink) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	denom := ev.Params.Denom
	sum := ev.Summary
	s.periods.WithLabelValues(ev.Command, ev.Policy.String(), denom).Set(float64(sum.Periods))
	if !sum.Total.IsNil() {
		total, _ := new(big.Float).SetInt(sum.Total.BigInt()).Float64()
		s.total.WithLabelValues(denom).Set(total)
	}
	s.release.WithLabelValues(denom, "min").Set(sum.MinRelease)
	s.release.WithLabelValues(denom, "max").Set(sum.MaxRelease)
	s.release.WithLabelValues(denom, "mean").Set(sum.MeanRelease)
	s.release.WithLabelValues(denom, "stddev").Set(sum.StdDev)
	s.params.WithLabelValues("interval").Set(float64(ev.Params.Interval))
	s.params.WithLabelValues("duration").Set(float64(ev.Params.Duration))
	s.params.WithLabelValues("cliff").Set(float64(ev.Params.CliffDuration))
	s.duration.Set(ev.Elapsed.Seconds())
	if !ev.Time.IsZero() {
		s.lastRun.Set(float64(ev.Time.UnixNano()) / 1e9)
	}
	s.runInfo.Reset()
	s.runInfo.WithLabelValues(ev.RunID).Set(1)
	if ev.Params.Truncated() {
		s.truncated.Set(1)
	} else {
		s.truncated.Set(0)
	}

	if s.path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.path, s.gatherer); err != nil {
		return fmt.Errorf("textfile %s: %w", s.path, err)
	}
	return nil
}
