// Package config loads, normalizes, and validates tipcat configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TIPCAT_REPO. The Config type centralizes every knob the CLI needs: branch
// refs, the tips directory, request-tracker settings, and output layout.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
