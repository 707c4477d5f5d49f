package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kilianp07/cosmos-tools/core/factory"
	"github.com/kilianp07/cosmos-tools/core/metrics"
	"github.com/kilianp07/cosmos-tools/core/vesting"
	_ "github.com/kilianp07/cosmos-tools/infra/metrics"
	"github.com/kilianp07/cosmos-tools/pkg/export"
)

type scheduleCommand struct {
	use    string
	short  string
	long   string
	policy vesting.Policy
}

type scheduleOptions struct {
	root   *rootOptions
	policy vesting.Policy

	interval    uint64
	duration    uint64
	cliff       uint64
	output      string
	denom       string
	format      string
	metricsFile string
}

func newScheduleCmd(root *rootOptions, def scheduleCommand) *cobra.Command {
	o := &scheduleOptions{root: root, policy: def.policy}
	cmd := &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Long:  def.long,
		Args:  cobra.ExactArgs(1),
		RunE:  o.run,
	}
	f := cmd.Flags()
	f.Uint64VarP(&o.interval, "interval", "i", 0, "period interval in seconds")
	f.Uint64VarP(&o.duration, "duration", "d", 0, "total vesting duration in seconds")
	f.Uint64VarP(&o.cliff, "cliff", "c", 0, "cliff duration in seconds, 0 vests from the start")
	f.StringVarP(&o.output, "output", "o", "", "output file, stdout when empty")
	f.StringVar(&o.denom, "denom", "", "token denomination, overrides the configured one")
	f.StringVarP(&o.format, "format", "f", export.DefaultFormat, "output format: "+strings.Join(export.Formats(), ", "))
	f.StringVar(&o.metricsFile, "metrics-file", "", "write a Prometheus textfile snapshot of the run")
	_ = cmd.MarkFlagRequired("interval")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func (o *scheduleOptions) run(cmd *cobra.Command, args []string) error {
	total, err := vesting.ParseAmount(args[0])
	if err != nil {
		return fmt.Errorf("total amount: %w", err)
	}
	cmd.SilenceUsage = true

	cfg, err := o.root.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("denom") {
		cfg.Vesting.Denom = o.denom
	}

	runID := uuid.NewString()
	log := o.root.logger(cmd, "vesting", runID)
	params := vesting.Params{
		TotalAmount:   total,
		Interval:      o.interval,
		Duration:      o.duration,
		CliffDuration: o.cliff,
		Denom:         cfg.Vesting.Denom,
	}
	if params.Truncated() {
		log.Warnf("duration %d is not a multiple of interval %d, the last %d seconds are not scheduled",
			params.Duration, params.Interval, params.Duration%params.Interval)
	}

	start := time.Now()
	periods, err := params.Build(o.policy)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	for i, p := range periods {
		log.Debugf("distribution %d: %s%s at %d", i+1, p.Amount.Amount, p.Amount.Denom, p.Length)
	}

	summary := vesting.Summarize(periods)
	log.Infow("schedule generated", map[string]any{
		"policy":   o.policy.String(),
		"periods":  summary.Periods,
		"total":    summary.Total.String(),
		"denom":    params.Denom,
		"interval": params.Interval,
		"duration": params.Duration,
		"cliff":    params.CliffDuration,
	})

	data, err := export.Encode(o.format, periods)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := o.write(cmd, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	sink, err := metrics.NewScheduleSink(o.metricsSinks())
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	if err := sink.RecordSchedule(metrics.ScheduleEvent{
		RunID:   runID,
		Command: cmd.Name(),
		Policy:  o.policy,
		Params:  params,
		Summary: summary,
		Elapsed: elapsed,
		Time:    start,
	}); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// write sends data to the output file, or to stdout followed by a newline.
func (o *scheduleOptions) write(cmd *cobra.Command, data []byte) error {
	if o.output != "" {
		return os.WriteFile(o.output, data, 0o644)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

func (o *scheduleOptions) metricsSinks() []factory.ModuleConfig {
	if o.metricsFile == "" {
		return nil
	}
	return []factory.ModuleConfig{{Type: "textfile", Conf: map[string]any{"path": o.metricsFile}}}
}
