// Package ghcli wraps the GitHub CLI for listing open issues. The tracker
// is an optional collaborator: a missing gh binary, missing credentials, or
// an unreachable host all surface as errors the caller downgrades to "no
// requests" so catalogue generation keeps going.
package ghcli
