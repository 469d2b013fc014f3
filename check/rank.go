package check

import "sort"

// TieBreak decides the relative order of records reporting the same height.
type TieBreak string

const (
	// TieBreakNone keeps the order in which records were collected, which
	// under concurrency is completion order and may vary between runs.
	TieBreakNone TieBreak = "none"
	// TieBreakLatency prefers lower measured latency.
	TieBreakLatency TieBreak = "latency"
	// TieBreakID orders by reported identity, lexically.
	TieBreakID TieBreak = "id"
)

func (tb TieBreak) valid() bool {
	switch tb {
	case TieBreakNone, TieBreakLatency, TieBreakID:
		return true
	}
	return false
}

// Select ranks records by reported height, descending, and truncates the
// result to at most topN entries. The sort is stable: records of equal
// height keep their relative collection order unless a tie-break is
// configured.
func Select(records []*Record, topN int, tieBreak TieBreak) []*Record {
	ranked := make([]*Record, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Status.Height != ranked[j].Status.Height {
			return ranked[i].Status.Height > ranked[j].Status.Height
		}
		switch tieBreak {
		case TieBreakLatency:
			return ranked[i].Latency < ranked[j].Latency
		case TieBreakID:
			return ranked[i].Status.ID < ranked[j].Status.ID
		default:
			return false
		}
	})

	if topN >= 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
