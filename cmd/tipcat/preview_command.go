package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tipcat/internal/catalogue"
	"tipcat/internal/logging"
	"tipcat/internal/services/ghcli"
	"tipcat/internal/services/git"
	"tipcat/internal/tips"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var skipRequests bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the catalogue to the terminal without writing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			gitClient := git.NewCLI(git.WithBinary(cfg.GitBinary()), git.WithWorkDir(cfg.Source.RepoDir))
			ghClient := ghcli.NewCLI(ghcli.WithBinary(cfg.GhBinary()))

			cat := buildCatalogue(cmd.Context(), cfg, logger, gitClient, ghClient, skipRequests)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(catalogue.Headers, previewRows(cat), []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}, isTerminal(out)))
			fmt.Fprintf(out, "%d entries\n", cat.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipRequests, "skip-requests", false, "Leave tracker requests out of the preview")
	return cmd
}

func previewRows(cat catalogue.Catalogue) [][]string {
	rows := make([][]string, 0, cat.Len())
	for _, tip := range cat.Numbered {
		rows = append(rows, []string{strconv.Itoa(tip.Number), tip.Title, tip.Summary, string(tip.State)})
	}
	for _, req := range cat.Requests {
		rows = append(rows, []string{"", req.Title, req.Summary, string(tips.StateRequested)})
	}
	return rows
}
