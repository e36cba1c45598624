package outline

import (
	"reflect"
	"testing"
)

func levels(hs []Heading) []int {
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = h.Level
	}
	return out
}

func TestRepair_LevelJumpReduced(t *testing.T) {
	raw := []Heading{
		{Title: "Intro", Level: 1, Page: 0},
		{Title: "Background", Level: 2, Page: 0},
		{Title: "Deep", Level: 4, Page: 1},
		{Title: "Methods", Level: 2, Page: 2},
	}
	got := Repair(raw, 10, RepairConfig{MaxDepth: 6})
	want := []int{1, 2, 3, 2}
	if !reflect.DeepEqual(levels(got), want) {
		t.Errorf("expected levels %v, got %v", want, levels(got))
	}
}

func TestRepair_ClampsLevelBounds(t *testing.T) {
	raw := []Heading{
		{Title: "Below", Level: 0, Page: 0},
		{Title: "Negative", Level: -3, Page: 0},
		{Title: "Way deep", Level: 99, Page: 0},
	}
	got := Repair(raw, 5, RepairConfig{MaxDepth: 3})
	for _, h := range got {
		if h.Level < 1 || h.Level > 3 {
			t.Errorf("heading %q has out-of-range level %d", h.Title, h.Level)
		}
	}
}

func TestRepair_DropsOutOfRangePages(t *testing.T) {
	raw := []Heading{
		{Title: "Real", Level: 1, Page: 0},
		{Title: "Phantom", Level: 1, Page: 42},
		{Title: "Negative", Level: 1, Page: -1},
		{Title: "Last", Level: 1, Page: 3},
	}
	got := Repair(raw, 3, RepairConfig{})
	if len(got) != 2 {
		t.Fatalf("expected 2 headings, got %d: %v", len(got), got)
	}
	if got[0].Title != "Real" || got[1].Title != "Last" {
		t.Errorf("unexpected survivors: %v", got)
	}
}

func TestRepair_CollapsesConsecutiveDuplicates(t *testing.T) {
	raw := []Heading{
		{Title: "Intro", Level: 1, Page: 0},
		{Title: "Intro", Level: 1, Page: 0},
	}
	got := Repair(raw, 5, RepairConfig{})
	if len(got) != 1 {
		t.Fatalf("expected duplicates to collapse to 1, got %d", len(got))
	}
}

func TestRepair_KeepsNonAdjacentRepeats(t *testing.T) {
	raw := []Heading{
		{Title: "Intro", Level: 1, Page: 0},
		{Title: "Detail", Level: 2, Page: 0},
		{Title: "Intro", Level: 1, Page: 0},
	}
	got := Repair(raw, 5, RepairConfig{})
	if len(got) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(got))
	}
}

func TestRepair_EmptyInput(t *testing.T) {
	got := Repair(nil, 10, RepairConfig{})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestRepair_DropsBlankTitles(t *testing.T) {
	raw := []Heading{
		{Title: "  ", Level: 1, Page: 0},
		{Title: "Kept", Level: 1, Page: 0},
	}
	got := Repair(raw, 5, RepairConfig{})
	if len(got) != 1 || got[0].Title != "Kept" {
		t.Errorf("expected only %q to survive, got %v", "Kept", got)
	}
}

func TestRepair_FirstHeadingKeepsItsLevel(t *testing.T) {
	raw := []Heading{
		{Title: "Orphan", Level: 2, Page: 0},
		{Title: "Child", Level: 3, Page: 1},
	}
	got := Repair(raw, 5, RepairConfig{})
	if got[0].Level != 2 {
		t.Errorf("expected first heading to stay at level 2, got %d", got[0].Level)
	}
	if got[1].Level != 3 {
		t.Errorf("expected second heading at level 3, got %d", got[1].Level)
	}
}

func TestRepair_PromoteFirstShiftsSequence(t *testing.T) {
	raw := []Heading{
		{Title: "Orphan", Level: 3, Page: 0},
		{Title: "Child", Level: 4, Page: 1},
		{Title: "Sibling", Level: 3, Page: 2},
	}
	got := Repair(raw, 10, RepairConfig{PromoteFirst: true})
	want := []int{1, 2, 1}
	if !reflect.DeepEqual(levels(got), want) {
		t.Errorf("expected levels %v, got %v", want, levels(got))
	}
}

func TestRepair_Idempotent(t *testing.T) {
	raw := []Heading{
		{Title: "Intro", Level: 1, Page: 0},
		{Title: "Background", Level: 2, Page: 0},
		{Title: "Deep", Level: 4, Page: 1},
		{Title: "Methods", Level: 2, Page: 2},
		{Title: "Methods", Level: 2, Page: 2},
	}
	once := Repair(raw, 10, RepairConfig{MaxDepth: 6})
	twice := Repair(once, 10, RepairConfig{MaxDepth: 6})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repair not idempotent:\n once: %v\ntwice: %v", once, twice)
	}
}

func TestRepair_IdempotentWithPromoteFirst(t *testing.T) {
	raw := []Heading{
		{Title: "Orphan", Level: 2, Page: 0},
		{Title: "Child", Level: 3, Page: 0},
	}
	cfg := RepairConfig{PromoteFirst: true}
	once := Repair(raw, 5, cfg)
	twice := Repair(once, 5, cfg)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repair not idempotent:\n once: %v\ntwice: %v", once, twice)
	}
}

func TestRepair_DeepJumpAfterPop(t *testing.T) {
	// After closing back to level 1, a jump to 5 has no open ancestors
	// deeper than 1 and must come down to 2.
	raw := []Heading{
		{Title: "A", Level: 1, Page: 0},
		{Title: "B", Level: 2, Page: 0},
		{Title: "C", Level: 3, Page: 1},
		{Title: "D", Level: 1, Page: 2},
		{Title: "E", Level: 5, Page: 2},
	}
	got := Repair(raw, 10, RepairConfig{MaxDepth: 6})
	want := []int{1, 2, 3, 1, 2}
	if !reflect.DeepEqual(levels(got), want) {
		t.Errorf("expected levels %v, got %v", want, levels(got))
	}
}
