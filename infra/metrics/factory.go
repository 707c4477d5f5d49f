package metrics

import (
	"github.com/kilianp07/cosmos-tools/core/factory"
	coremetrics "github.com/kilianp07/cosmos-tools/core/metrics"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterScheduleSink("textfile", func(conf map[string]any) (coremetrics.ScheduleSink, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewTextfileSink(c.Path)
	})
}
