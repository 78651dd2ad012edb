package tips

// State is the lifecycle state a catalogue entry is published in.
type State string

const (
	// StateProduction marks tips present on the main branch.
	StateProduction State = "production"
	// StateDraft marks tips only present on the dev branch.
	StateDraft State = "draft"
	// StateRequested marks entries derived from open tracker issues.
	StateRequested State = "requested"
)

// Tip is a numbered catalogue entry extracted from a tip file.
type Tip struct {
	Number  int
	Title   string
	Summary string
	State   State
}

// Request is an unnumbered catalogue entry derived from a tracker issue.
// Requests keep their arrival order and are never deduplicated.
type Request struct {
	Title   string
	Summary string
}
