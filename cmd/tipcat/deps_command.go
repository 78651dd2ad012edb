package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tipcat/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Report availability of external binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg.GitBinary(), cfg.GhBinary()))
			rows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				availability := "ok"
				if !status.Available {
					availability = status.Detail
					if !status.Optional {
						missingRequired = true
					}
				}
				required := "required"
				if status.Optional {
					required = "optional"
				}
				rows = append(rows, []string{status.Name, status.Command, required, availability, status.Description})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Command", "Kind", "Status", "Purpose"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				isTerminal(out),
			))

			if missingRequired {
				return fmt.Errorf("required binaries missing")
			}
			return nil
		},
	}
}
