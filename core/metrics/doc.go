// Package metrics defines the sink interface used to record schedule
// generation runs. Sinks are created by name through a registry; the
// Prometheus textfile sink lives in infra/metrics and registers itself on
// import. NewScheduleSink returns a NopSink when nothing is configured and a
// MultiSink when several sinks are.
package metrics
