package metrics

import "github.com/kilianp07/cosmos-tools/core/factory"

var sinkRegistry = factory.NewRegistry[ScheduleSink]()

func init() {
	_ = RegisterScheduleSink("nop", func(map[string]any) (ScheduleSink, error) {
		return NopSink{}, nil
	})
}

// RegisterScheduleSink adds a sink factory identified by name.
func RegisterScheduleSink(name string, f factory.Factory[ScheduleSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewScheduleSink creates a ScheduleSink from the provided configuration.
func NewScheduleSink(cfgs []factory.ModuleConfig) (ScheduleSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]ScheduleSink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
