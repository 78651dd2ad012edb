package ghcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var commandContext = exec.CommandContext

// Issue is one open item from the tracker.
type Issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Client defines the issue-tracker queries the catalogue needs.
type Client interface {
	ListOpenIssues(ctx context.Context, repo string) ([]Issue, error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the gh command-line tool.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "gh"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// ListOpenIssues fetches open issues for the owner/name slug.
func (c *CLI) ListOpenIssues(ctx context.Context, repo string) ([]Issue, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return nil, errors.New("repo slug required")
	}

	args := []string{"issue", "list", "--repo", repo, "--state", "open", "--json", "number,title,body"}
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("gh issue list: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("gh issue list: %w", err)
	}

	var issues []Issue
	if err := json.Unmarshal(stdout.Bytes(), &issues); err != nil {
		return nil, fmt.Errorf("parse gh issue list output: %w", err)
	}
	return issues, nil
}

var _ Client = (*CLI)(nil)

var githubRemotePattern = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/.]+)`)

// ParseRepoFromRemote extracts an owner/name slug from an SSH or HTTPS
// github.com remote URL. Returns empty for non-GitHub remotes.
func ParseRepoFromRemote(url string) string {
	m := githubRemotePattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return ""
	}
	return m[1] + "/" + m[2]
}
