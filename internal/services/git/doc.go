// Package git wraps the git binary for read-only queries against historical
// refs: listing a tree, reading a file at a ref, and resolving remote URLs.
//
// Absent refs and paths are not errors here. A tip catalogue is expected to
// survive a missing dev branch or an empty tips directory, so exit failures
// from git map to empty results and only environmental problems (no binary,
// cancelled context) surface as errors.
package git
