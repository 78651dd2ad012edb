package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tipcat/internal/catalogue"
	"tipcat/internal/config"
	"tipcat/internal/deps"
	"tipcat/internal/logging"
	"tipcat/internal/services/ghcli"
	"tipcat/internal/services/git"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var skipRequests bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the catalogue document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))

			warnMissingBinaries(cfg, logger, skipRequests)

			gitClient := git.NewCLI(git.WithBinary(cfg.GitBinary()), git.WithWorkDir(cfg.Source.RepoDir))
			ghClient := ghcli.NewCLI(ghcli.WithBinary(cfg.GhBinary()))

			cat := buildCatalogue(cmd.Context(), cfg, logger, gitClient, ghClient, skipRequests)
			document := catalogue.Render(cat, cfg.Output.Heading)

			outputPath := cfg.Output.Path
			if outputFlag != "" {
				expanded, err := config.ExpandPath(outputFlag)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				outputPath = expanded
			}

			writer := catalogue.NewWriter(outputPath)
			if err := writer.Write(document); err != nil {
				return err
			}

			logger.Info("catalogue written",
				logging.String("path", outputPath), logging.Int("entries", cat.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d entries)\n", outputPath, cat.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the catalogue to this path instead of the configured one")
	cmd.Flags().BoolVar(&skipRequests, "skip-requests", false, "Leave tracker requests out of the catalogue")
	return cmd
}

// warnMissingBinaries surfaces absent external tools before the scan so a
// fully empty catalogue is explainable from the log.
func warnMissingBinaries(cfg *config.Config, logger *slog.Logger, skipRequests bool) {
	for _, status := range deps.CheckBinaries(deps.Requirements(cfg.GitBinary(), cfg.GhBinary())) {
		if status.Available {
			continue
		}
		if status.Optional && (skipRequests || !cfg.Requests.Enabled) {
			continue
		}
		logger.Warn("external binary unavailable",
			logging.String("name", status.Name), logging.String("detail", status.Detail))
	}
}
