package config

const (
	defaultRepoDir      = "."
	defaultMainRef      = "origin/main"
	defaultDevRef       = "origin/dev"
	defaultTipsDir      = "tips/"
	defaultTitlePrefix  = "[tip request]"
	defaultOutputPath   = "CATALOGUE.md"
	defaultHeading      = "# Tips Catalogue"
	defaultSummaryWords = 50
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			RepoDir: defaultRepoDir,
			MainRef: defaultMainRef,
			DevRef:  defaultDevRef,
			TipsDir: defaultTipsDir,
		},
		Requests: Requests{
			Enabled:     true,
			TitlePrefix: defaultTitlePrefix,
		},
		Output: Output{
			Path:         defaultOutputPath,
			Heading:      defaultHeading,
			SummaryWords: defaultSummaryWords,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
