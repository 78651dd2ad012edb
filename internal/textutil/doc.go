// Package textutil provides text processing utilities for summary building
// and markdown table rendering.
//
// The primary use cases are:
//   - Collapsing runs of whitespace scraped out of HTML into single spaces
//   - Truncating free text to a fixed word budget with an ellipsis marker
//   - Escaping pipe characters so table cells cannot break row structure
package textutil
