package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/cosmos-tools/core/vesting"
)

func newVestingCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vesting",
		Short: "Vesting schedule commands",
	}
	cmd.AddCommand(newScheduleCmd(root, scheduleCommand{
		use:    "generate-cliff <total_amount>",
		short:  "Generate the vesting periods of a schedule with an optional cliff",
		long:   "Generate the vesting periods of a schedule. Periods start at the first\ninterval boundary after the cliff and every boundary from there on is emitted.",
		policy: vesting.PolicyStartAfterCliff,
	}))
	return cmd
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	return newScheduleCmd(root, scheduleCommand{
		use:    "generate <total_amount>",
		short:  "Generate a JSON file containing all vesting periods",
		long:   "Generate the vesting periods of a schedule. Every interval boundary is\nevaluated and periods releasing nothing are left out.",
		policy: vesting.PolicySkipZero,
	})
}
