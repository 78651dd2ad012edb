// Package catalogue merges per-source tip mappings into one ordered
// document and renders it as a markdown table.
//
// Merge precedence is fixed: the production branch wins whenever both
// branches carry the same tip number, so every number appears exactly once
// with one canonical state. Request entries have no number; they follow the
// numbered rows in arrival order. The writer holds a file lock next to the
// output so two runs cannot interleave writes.
package catalogue
