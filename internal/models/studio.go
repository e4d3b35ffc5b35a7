// internal/models/studio.go
package models

import (
	"fmt"
	"unicode/utf8"
)

// CreativeContent is the shared editable copy and design state. Exactly one
// instance is live per session; every preview renders from it. The active
// image is tracked separately by index so preset snapshots naturally
// exclude it.
type CreativeContent struct {
	Headline    string `json:"headline"`
	Subhead     string `json:"subhead"`
	CTALabel    string `json:"cta_label"`
	AccentColor string `json:"accent_color"`
	DarkTheme   bool   `json:"dark_theme"`
}

type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ImageTransform positions the creative image inside its region. Offset is
// unbounded; scale is clamped to [MinScale, MaxScale] on every write.
type ImageTransform struct {
	Scale  float64 `json:"scale"`
	Offset Offset  `json:"offset"`
}

const (
	MinScale = 0.5
	MaxScale = 1.5
)

// ClampScale snaps a requested scale into the valid range.
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// Advisory character thresholds. Exceeding one yields a warning in the
// response, never a rejection.
const (
	HeadlineWarnLimit = 40
	SubheadWarnLimit  = 80
	CTAWarnLimit      = 20
)

// Warnings reports which fields exceed their advisory length threshold.
func (c *CreativeContent) Warnings() []string {
	var out []string
	if n := utf8.RuneCountInString(c.Headline); n > HeadlineWarnLimit {
		out = append(out, fmt.Sprintf("headline is %d characters, recommended maximum is %d", n, HeadlineWarnLimit))
	}
	if n := utf8.RuneCountInString(c.Subhead); n > SubheadWarnLimit {
		out = append(out, fmt.Sprintf("subhead is %d characters, recommended maximum is %d", n, SubheadWarnLimit))
	}
	if n := utf8.RuneCountInString(c.CTALabel); n > CTAWarnLimit {
		out = append(out, fmt.Sprintf("cta label is %d characters, recommended maximum is %d", n, CTAWarnLimit))
	}
	return out
}

type UpdateContentRequest struct {
	Headline    *string `json:"headline,omitempty"`
	Subhead     *string `json:"subhead,omitempty"`
	CTALabel    *string `json:"cta_label,omitempty"`
	AccentColor *string `json:"accent_color,omitempty" validate:"omitempty,hexcolor"`
	DarkTheme   *bool   `json:"dark_theme,omitempty"`
}

type SetScaleRequest struct {
	Scale float64 `json:"scale" validate:"required"`
}

type SetOffsetRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SelectImageRequest struct {
	Index int `json:"index" validate:"min=-1"`
}

type PointerPhase string

const (
	PointerDown PointerPhase = "down"
	PointerMove PointerPhase = "move"
	PointerUp   PointerPhase = "up"
)

// PointerEventRequest is one pointer sample from the front end, addressed
// to a catalog slot. Coordinates are in the slot's logical pixel space.
type PointerEventRequest struct {
	Slot  string       `json:"slot" validate:"required"`
	Phase PointerPhase `json:"phase" validate:"required,oneof=down move up"`
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
}
