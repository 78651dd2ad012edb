package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Client defines the version-control queries the catalogue needs.
type Client interface {
	// ListFiles returns paths under prefix in the tree at ref. An unknown
	// ref yields an empty slice, not an error.
	ListFiles(ctx context.Context, ref, prefix string) ([]string, error)
	// ReadFile returns the content of path in the tree at ref. A missing
	// ref or path yields an empty string, not an error.
	ReadFile(ctx context.Context, ref, path string) (string, error)
	// RemoteURL returns the fetch URL of the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)
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

// WithWorkDir sets the repository directory commands run in.
func WithWorkDir(dir string) Option {
	return func(c *CLI) {
		if dir != "" {
			c.workDir = dir
		}
	}
}

// CLI wraps the git command-line tool.
type CLI struct {
	binary  string
	workDir string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "git"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// ListFiles lists the tree at ref and keeps paths under prefix.
func (c *CLI) ListFiles(ctx context.Context, ref, prefix string) ([]string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("ref required")
	}

	out, ok, err := c.run(ctx, "ls-tree", "-r", "--name-only", ref)
	if err != nil {
		return nil, fmt.Errorf("git ls-tree %s: %w", ref, err)
	}
	if !ok {
		return nil, nil
	}

	prefix = strings.TrimSuffix(prefix, "*")
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if prefix == "" || strings.HasPrefix(line, prefix) {
			files = append(files, line)
		}
	}
	return files, nil
}

// ReadFile returns the content of path at ref.
func (c *CLI) ReadFile(ctx context.Context, ref, path string) (string, error) {
	ref = strings.TrimSpace(ref)
	path = strings.TrimSpace(path)
	if ref == "" || path == "" {
		return "", errors.New("ref and path required")
	}

	out, ok, err := c.run(ctx, "show", ref+":"+path)
	if err != nil {
		return "", fmt.Errorf("git show %s:%s: %w", ref, path, err)
	}
	if !ok {
		return "", nil
	}
	return out, nil
}

// RemoteURL resolves the fetch URL of the named remote.
func (c *CLI) RemoteURL(ctx context.Context, remote string) (string, error) {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		remote = "origin"
	}

	out, ok, err := c.run(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("git remote get-url %s: %w", remote, err)
	}
	if !ok {
		return "", fmt.Errorf("remote %q not configured", remote)
	}
	return strings.TrimSpace(out), nil
}

// run executes git and separates "git said no" from "git could not run".
// The second return is false when git exited non-zero, which callers treat
// as an absent ref or path.
func (c *CLI) run(ctx context.Context, args ...string) (string, bool, error) {
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	cmd.Dir = c.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return "", false, nil
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", false, fmt.Errorf("%w: %s", err, msg)
		}
		return "", false, err
	}
	return stdout.String(), true, nil
}

var _ Client = (*CLI)(nil)
