package catalogue

import (
	"sort"

	"tipcat/internal/tips"
)

// Catalogue is the merged, ordered view of every source.
type Catalogue struct {
	// Numbered holds one entry per tip number, ascending.
	Numbered []tips.Tip
	// Requests follow the numbered entries in arrival order.
	Requests []tips.Request
}

// Merge combines the production and draft mappings and appends request
// entries. Production overrides draft entirely on shared numbers: title,
// summary, and state all come from the production copy.
func Merge(production, draft map[int]tips.Tip, requests []tips.Request) Catalogue {
	merged := make(map[int]tips.Tip, len(production)+len(draft))
	for number, tip := range draft {
		merged[number] = tip
	}
	for number, tip := range production {
		merged[number] = tip
	}

	numbers := make([]int, 0, len(merged))
	for number := range merged {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	numbered := make([]tips.Tip, 0, len(numbers))
	for _, number := range numbers {
		numbered = append(numbered, merged[number])
	}

	return Catalogue{
		Numbered: numbered,
		Requests: append([]tips.Request(nil), requests...),
	}
}

// Len reports the total number of rows the catalogue will render.
func (c Catalogue) Len() int {
	return len(c.Numbered) + len(c.Requests)
}
