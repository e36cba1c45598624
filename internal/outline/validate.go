package outline

import "strings"

// DefaultMaxDepth bounds heading levels, H1 through H6.
const DefaultMaxDepth = 6

// RepairConfig controls how Repair normalizes an oracle heading sequence.
type RepairConfig struct {
	// MaxDepth is the deepest level a heading may carry. Zero means
	// DefaultMaxDepth.
	MaxDepth int

	// PromoteFirst shifts the whole sequence up so the first heading sits
	// at level 1. Off by default: a document whose first detected heading
	// is level 2 keeps it attached to the virtual root at level 2.
	PromoteFirst bool
}

// Repair transforms an untrusted heading sequence into one that is safe to
// assemble into a tree, without discarding legitimate structure. In order:
// levels are clamped into [1, MaxDepth], headings pointing outside
// [0, lastPage] are dropped, upward level jumps greater than one are
// reduced so every heading has a viable parent, and consecutive duplicates
// of (title, page, level) collapse to one.
//
// Repair never fails: malformed input is repaired, not rejected, since
// rejecting would fail the whole pipeline over minor oracle imprecision.
// Running it on an already-valid sequence returns the sequence unchanged.
func Repair(raw []Heading, lastPage int, cfg RepairConfig) []Heading {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	out := make([]Heading, 0, len(raw))
	var open []int // stack of currently open levels, shallowest first
	shift := 0
	first := true

	for _, h := range raw {
		if strings.TrimSpace(h.Title) == "" {
			continue
		}
		// A page outside the bounded document cannot correspond to text
		// the oracle actually saw.
		if h.Page < 0 || h.Page > lastPage {
			continue
		}

		if h.Level < 1 {
			h.Level = 1
		} else if h.Level > maxDepth {
			h.Level = maxDepth
		}

		if first {
			first = false
			if cfg.PromoteFirst {
				shift = h.Level - 1
			}
		}
		if h.Level-shift >= 1 {
			h.Level -= shift
		} else {
			h.Level = 1
		}

		// A heading more than one level below the deepest open level has
		// no viable parent; pull it up to deepest+1.
		if len(open) > 0 && h.Level > open[len(open)-1]+1 {
			h.Level = open[len(open)-1] + 1
		}
		for len(open) > 0 && open[len(open)-1] >= h.Level {
			open = open[:len(open)-1]
		}
		open = append(open, h.Level)

		// Oracle repetition artifact: identical consecutive candidates.
		if n := len(out); n > 0 && out[n-1] == h {
			continue
		}
		out = append(out, h)
	}
	return out
}
