// Package logging constructs the slog loggers used across tipcat.
//
// It maps configuration values (format, level, optional log directory) onto
// slog handlers so the CLI gets console output by default and a JSON stream
// when asked for one. Obtain loggers through New or NewFromConfig so level
// parsing and file output stay consistent between commands.
package logging
