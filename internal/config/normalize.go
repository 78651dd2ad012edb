package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSource(); err != nil {
		return err
	}
	c.normalizeRequests()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeSource() error {
	var err error
	if strings.TrimSpace(c.Source.RepoDir) == "" {
		c.Source.RepoDir = defaultRepoDir
	}
	if c.Source.RepoDir, err = expandPath(c.Source.RepoDir); err != nil {
		return fmt.Errorf("source.repo_dir: %w", err)
	}
	c.Source.MainRef = strings.TrimSpace(c.Source.MainRef)
	if c.Source.MainRef == "" {
		c.Source.MainRef = defaultMainRef
	}
	c.Source.DevRef = strings.TrimSpace(c.Source.DevRef)
	if c.Source.DevRef == "" {
		c.Source.DevRef = defaultDevRef
	}
	c.Source.TipsDir = strings.TrimSpace(c.Source.TipsDir)
	if c.Source.TipsDir == "" {
		c.Source.TipsDir = defaultTipsDir
	}
	// ls-tree paths never carry a leading "./" component.
	c.Source.TipsDir = strings.TrimPrefix(c.Source.TipsDir, "./")
	return nil
}

func (c *Config) normalizeRequests() {
	c.Requests.Repo = strings.TrimSpace(c.Requests.Repo)
	if c.Requests.Repo == "" {
		if repo, ok := os.LookupEnv("TIPCAT_REPO"); ok {
			c.Requests.Repo = strings.TrimSpace(repo)
		}
	}
	c.Requests.TitlePrefix = strings.TrimSpace(c.Requests.TitlePrefix)
	if c.Requests.TitlePrefix == "" {
		c.Requests.TitlePrefix = defaultTitlePrefix
	}
}

func (c *Config) normalizeOutput() error {
	var err error
	if strings.TrimSpace(c.Output.Path) == "" {
		c.Output.Path = defaultOutputPath
	}
	if c.Output.Path, err = expandPath(c.Output.Path); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	c.Output.Heading = strings.TrimSpace(c.Output.Heading)
	if c.Output.Heading == "" {
		c.Output.Heading = defaultHeading
	}
	if c.Output.SummaryWords == 0 {
		c.Output.SummaryWords = defaultSummaryWords
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		expanded, err := expandPath(c.Logging.Dir)
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = expanded
	} else {
		c.Logging.Dir = ""
	}
	return nil
}
