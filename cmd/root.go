package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/cosmos-tools/config"
	"github.com/kilianp07/cosmos-tools/infra/logger"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "0.1.0"

type rootOptions struct {
	cfgPath string
	verbose bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "cosmos-tools",
		Short:         "Tooling for Cosmos chain operators",
		Version:       Version,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.PersistentFlags().StringVar(&opts.cfgPath, "config", config.DefaultFile, "configuration file (toml, yaml or json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newVestingCmd(opts))
	return root
}

// Execute runs the CLI. Errors are reported on stderr before returning.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}

// loadConfig reads the configuration. The default file is optional; a path
// given explicitly with --config must exist.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(o.cfgPath)
	}
	return config.LoadOptional(o.cfgPath)
}

func (o *rootOptions) logger(cmd *cobra.Command, component, runID string) logger.Logger {
	return logger.New(component,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithVerbose(o.verbose),
		logger.WithField("run_id", runID),
	)
}
