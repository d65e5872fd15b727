package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"payflow/internal/domain/flow"
	"payflow/internal/interface/cli/ui"
)

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the steps of the payout flow",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(ui.TitleStyle.Render("Non-custodial payout flow"))
			for s := flow.Step(0); s.IsValid(); s++ {
				fmt.Printf("  %2d. %s\n", s.Number(), s.Title())
			}
		},
	}
}
