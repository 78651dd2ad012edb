package main

import (
	"context"
	"log/slog"

	"tipcat/internal/catalogue"
	"tipcat/internal/config"
	"tipcat/internal/logging"
	"tipcat/internal/services/ghcli"
	"tipcat/internal/services/git"
	"tipcat/internal/tips"
)

// buildCatalogue runs the full scrape-and-merge pipeline: both branches,
// then the tracker when requests are enabled. Every source degrades to
// empty on failure; the catalogue always comes back usable.
func buildCatalogue(ctx context.Context, cfg *config.Config, logger *slog.Logger, gitClient git.Client, ghClient ghcli.Client, skipRequests bool) catalogue.Catalogue {
	production := tips.FromBranch(ctx, gitClient, cfg.Source.MainRef, cfg.Source.TipsDir, tips.StateProduction, cfg.Output.SummaryWords, logger)
	draft := tips.FromBranch(ctx, gitClient, cfg.Source.DevRef, cfg.Source.TipsDir, tips.StateDraft, cfg.Output.SummaryWords, logger)

	var requests []tips.Request
	if cfg.Requests.Enabled && !skipRequests {
		requests = fetchRequests(ctx, cfg, logger, gitClient, ghClient)
	}

	logger.Info("sources scanned",
		logging.Int("production", len(production)),
		logging.Int("draft", len(draft)),
		logging.Int("requests", len(requests)),
	)

	return catalogue.Merge(production, draft, requests)
}

// fetchRequests resolves the tracker repo and lists open tip requests. Any
// failure along the way is a warning and zero requests, never an error.
func fetchRequests(ctx context.Context, cfg *config.Config, logger *slog.Logger, gitClient git.Client, ghClient ghcli.Client) []tips.Request {
	repo := cfg.Requests.Repo
	if repo == "" {
		url, err := gitClient.RemoteURL(ctx, "origin")
		if err != nil {
			logger.Warn("resolve origin remote failed, skipping requests", logging.Error(err))
			return nil
		}
		repo = ghcli.ParseRepoFromRemote(url)
		if repo == "" {
			logger.Warn("origin is not a github.com remote, skipping requests", logging.String("url", url))
			return nil
		}
	}

	issues, err := ghClient.ListOpenIssues(ctx, repo)
	if err != nil {
		logger.Warn("list open issues failed, skipping requests",
			logging.String("repo", repo), logging.Error(err))
		return nil
	}
	return tips.FromIssues(issues, cfg.Requests.TitlePrefix, cfg.Output.SummaryWords)
}
