package tips

import (
	"context"
	"log/slog"
	"strings"

	"tipcat/internal/logging"
	"tipcat/internal/services/git"
)

// FromBranch scans ref for tip files under dir and extracts one entry per
// file into a map keyed by tip number. Every failure is per-item: a missing
// branch yields an empty map, an unreadable or misnamed file is skipped
// with a warning, and the rest of the scan continues.
func FromBranch(ctx context.Context, client git.Client, ref, dir string, state State, summaryWords int, logger *slog.Logger) map[int]Tip {
	log := logging.NewComponentLogger(logger, "tips")
	result := map[int]Tip{}

	files, err := client.ListFiles(ctx, ref, dir)
	if err != nil {
		log.Warn("list tip files failed, treating branch as empty",
			logging.String("ref", ref), logging.Error(err))
		return result
	}

	for _, file := range files {
		content, err := client.ReadFile(ctx, ref, file)
		if err != nil {
			log.Warn("read tip file failed, skipping",
				logging.String("ref", ref), logging.String("path", file), logging.Error(err))
			continue
		}
		if strings.TrimSpace(content) == "" {
			continue
		}
		tip, err := Extract(content, file, summaryWords)
		if err != nil {
			log.Warn("skipping tip file",
				logging.String("ref", ref), logging.String("path", file), logging.Error(err))
			continue
		}
		tip.State = state
		result[tip.Number] = tip
	}

	return result
}
