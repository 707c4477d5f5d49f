package metrics

import (
	"time"

	"github.com/kilianp07/cosmos-tools/core/vesting"
)

// ScheduleEvent describes one schedule generation run.
type ScheduleEvent struct {
	RunID   string
	Command string
	Policy  vesting.Policy
	Params  vesting.Params
	Summary vesting.Summary
	Elapsed time.Duration
	Time    time.Time
}

// ScheduleSink records schedule generation runs.
type ScheduleSink interface {
	RecordSchedule(ev ScheduleEvent) error
}

// NopSink implements ScheduleSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSchedule(ScheduleEvent) error { return nil }

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []ScheduleSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...ScheduleSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSchedule forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordSchedule(ev ScheduleEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSchedule(ev); err != nil {
			return err
		}
	}
	return nil
}
