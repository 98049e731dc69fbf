package stats

import (
	"fmt"
	"testing"
	"time"

	"timekeep/internal/models"
)

func TestColorMapFirstSeenOrder(t *testing.T) {
	a := category(1, "A")
	b := category(2, "B")
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		session(a, base, 3600),
		session(b, base.Add(time.Hour), 3600),
		session(a, base.Add(2*time.Hour), 3600), // repeat keeps its slot
	}

	colors := ColorMap(sessions)
	if colors["A"] != Palette[0] {
		t.Errorf("A: expected %s, got %s", Palette[0], colors["A"])
	}
	if colors["B"] != Palette[1] {
		t.Errorf("B: expected %s, got %s", Palette[1], colors["B"])
	}
}

func TestColorMapNoCategoryFallbackLabel(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	colors := ColorMap([]models.Session{session(nil, base, 3600)})
	if colors[models.NoCategoryLabel] != Palette[0] {
		t.Errorf("expected %q to get the first color, got %v", models.NoCategoryLabel, colors)
	}
}

func TestColorMapCyclesBeyondTenCategories(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var sessions []models.Session
	for i := 0; i < 12; i++ {
		cat := category(uint(i+1), fmt.Sprintf("cat-%02d", i))
		sessions = append(sessions, session(cat, base.Add(time.Duration(i)*time.Minute), 60))
	}

	colors := ColorMap(sessions)
	if len(colors) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(colors))
	}
	if colors["cat-10"] != Palette[0] {
		t.Errorf("11th category should cycle to %s, got %s", Palette[0], colors["cat-10"])
	}
	if colors["cat-11"] != Palette[1] {
		t.Errorf("12th category should cycle to %s, got %s", Palette[1], colors["cat-11"])
	}
}

func TestZeroDurationSessionClaimsColorSlot(t *testing.T) {
	idle := category(1, "Idle")
	work := category(2, "Work")
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		session(idle, base, 0),
		session(work, base.Add(time.Hour), 3600),
	}

	colors := ColorMap(sessions)
	if colors["Idle"] != Palette[0] {
		t.Errorf("zero-duration session should still claim the first color, got %v", colors)
	}
	if colors["Work"] != Palette[1] {
		t.Errorf("expected Work on the second color, got %v", colors)
	}
}
