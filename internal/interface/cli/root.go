// Package cli wires the commands of the payflow binary. The interactive
// run command drives the fourteen-step walkthrough; the remaining
// commands are inspection helpers around it.
package cli

import (
	"github.com/spf13/cobra"

	"payflow/internal/app/config"
)

// globalConfig holds the loaded configuration for all commands. Loading
// errors are deferred: commands that do not need credentials still work
// without them.
var (
	globalConfig config.Config
	configErr    error
	configFile   string
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payflow",
		Short: "Walk through a non-custodial payout end to end",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			globalConfig, configErr = config.Load(configFile)
			return nil
		},
		RunE:          func(c *cobra.Command, _ []string) error { return c.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path to payflow.yaml")
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newStepsCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// requireConfig returns the loaded configuration or the deferred loading
// error for commands that need credentials.
func requireConfig() (config.Config, error) {
	return globalConfig, configErr
}
