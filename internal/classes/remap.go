package classes

import (
	"github.com/AybarsKansu/image-labeling/internal/annotation"
)

// Remap is the result of unifying several per-source class lists: the
// merged list in unified id order, and one local-id to unified-id table
// per source.
type Remap struct {
	Unified []string
	Tables  [][]int
}

// BuildRemap merges per-source class lists into one unified list.
// Names are matched after Canonical normalization, and unified ids are
// assigned in first-seen order walking the sources in the order given.
// The unified list keeps the canonical spelling of the first occurrence.
func BuildRemap(sources [][]string) Remap {
	ids := map[string]int{}
	rm := Remap{Tables: make([][]int, len(sources))}

	for si, src := range sources {
		table := make([]int, len(src))
		for li, name := range src {
			c := Canonical(name)
			id, ok := ids[c]
			if !ok {
				id = len(rm.Unified)
				ids[c] = id
				rm.Unified = append(rm.Unified, c)
			}
			table[li] = id
		}
		rm.Tables[si] = table
	}
	return rm
}

// Apply rewrites a record's class ids through the table of source src.
// Entries whose class id falls outside the source's class list are
// dropped; a stale id cannot be mapped to anything meaningful.
func (rm Remap) Apply(rec *annotation.LabelRecord, src int) {
	table := rm.Tables[src]
	kept := rec.Entries[:0]
	for _, e := range rec.Entries {
		if e.ClassID < 0 || e.ClassID >= len(table) {
			continue
		}
		e.ClassID = table[e.ClassID]
		kept = append(kept, e)
	}
	rec.Entries = kept
}
