// internal/geometry/catalog.go
package geometry

import (
	"fmt"
	"strings"
)

// Slot is one fixed target size from the supported ad-slot catalog.
// Exactly one slot is flagged primary; that instance is the only one that
// accepts drag interaction, all others mirror the shared state read-only.
type Slot struct {
	Label   string `json:"label"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary"`
}

// Slug returns the URL identifier for the slot, the lowercased label with
// spaces replaced by dashes.
func (s Slot) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.Label), " ", "-")
}

// FileName returns the export file name for the slot.
func (s Slot) FileName() string {
	return fmt.Sprintf("%s-%dx%d.png", s.Slug(), s.Width, s.Height)
}

func (s Slot) Classification() Classification {
	return Classify(s.Width, s.Height)
}

var catalog = []Slot{
	{Label: "Billboard", Width: 970, Height: 250, Primary: true},
	{Label: "Medium Rectangle", Width: 300, Height: 250},
	{Label: "Large Rectangle", Width: 336, Height: 280},
	{Label: "Square", Width: 250, Height: 250},
	{Label: "Leaderboard", Width: 728, Height: 90},
	{Label: "Super Leaderboard", Width: 970, Height: 90},
	{Label: "Mobile Banner", Width: 320, Height: 50},
	{Label: "Large Mobile Banner", Width: 320, Height: 100},
	{Label: "Wide Skyscraper", Width: 160, Height: 600},
	{Label: "Skyscraper", Width: 120, Height: 600},
	{Label: "Half Page", Width: 300, Height: 600},
}

// Catalog returns the fixed slot list in display order.
func Catalog() []Slot {
	out := make([]Slot, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks a slot up by its slug.
func Find(slug string) (Slot, bool) {
	for _, s := range catalog {
		if s.Slug() == slug {
			return s, true
		}
	}
	return Slot{}, false
}

// Primary returns the single drag-interactive slot.
func Primary() Slot {
	for _, s := range catalog {
		if s.Primary {
			return s
		}
	}
	return catalog[0]
}
