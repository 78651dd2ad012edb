// Package tips holds the catalogue's domain model and the extraction rules
// that turn versioned HTML tip files and tracker issues into entries.
//
// A tip file is named <number>.html and contributes a Numbered entry with a
// title scraped from its first h1 and a word-budgeted body summary. Tracker
// issues whose titles carry the request prefix contribute Request entries
// with no number. Extraction is best effort: files that fail the naming
// rule are skipped with a warning, never fatally.
package tips
