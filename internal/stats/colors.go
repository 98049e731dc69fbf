package stats

import "timekeep/internal/models"

// Palette is the fixed set of category colors. Categories are assigned a
// color in first-seen order over the session collection, cycling when more
// than ten names appear.
var Palette = []string{
	"#2563eb", // blue
	"#16a34a", // green
	"#f97316", // orange
	"#e11d48", // pink-red
	"#9333ea", // purple
	"#14b8a6", // teal
	"#f59e0b", // amber
	"#3b82f6", // light blue
	"#84cc16", // lime
	"#ef4444", // red
}

// ColorMap assigns each unique category display name a stable palette
// color. The assignment is a single ordered pass over the full collection,
// so the same dataset always yields the same mapping and every view of one
// report shares it. Zero-duration sessions still claim their slot.
func ColorMap(sessions []models.Session) map[string]string {
	colors := make(map[string]string)
	for i, name := range CategoryOrder(sessions) {
		colors[name] = Palette[i%len(Palette)]
	}
	return colors
}

// CategoryOrder returns the unique category display names in first-seen
// order over the session collection
func CategoryOrder(sessions []models.Session) []string {
	seen := make(map[string]bool)
	var order []string
	for i := range sessions {
		name := sessions[i].CategoryName()
		if seen[name] {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	return order
}
