// internal/layout/layout.go
//
// The layout engine maps (size, content, transform) to a Frame: an image
// region, a text region and a CTA region with class-keyed geometry and
// typography. Compose is pure and idempotent; identical inputs always
// produce an identical frame, which keeps every simultaneously rendered
// preview consistent with the others.
package layout

import (
	"adproof/internal/geometry"
	"adproof/internal/models"
	"adproof/internal/typeface"
)

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Contains reports whether the point (x, y) falls inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

type Palette struct {
	Background  string `json:"background"`
	Text        string `json:"text"`
	Subtext     string `json:"subtext"`
	Placeholder string `json:"placeholder"`
	Mark        string `json:"mark"`
}

var (
	lightPalette = Palette{
		Background:  "#FFFFFF",
		Text:        "#1A1A2E",
		Subtext:     "#6B7280",
		Placeholder: "#E5E7EB",
		Mark:        "#9CA3AF",
	}
	darkPalette = Palette{
		Background:  "#111827",
		Text:        "#F9FAFB",
		Subtext:     "#9CA3AF",
		Placeholder: "#1F2937",
		Mark:        "#4B5563",
	}
)

// PaletteFor selects the light or dark palette. Theme is orthogonal to
// layout class.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// ImageRegion positions the creative image. When no image is active the
// region renders as a placeholder marker whose icon shrinks under micro.
type ImageRegion struct {
	Rect     Rect          `json:"rect"`
	Present  bool          `json:"present"`
	IconSize float64       `json:"icon_size"`
	Scale    float64       `json:"scale"`
	Offset   models.Offset `json:"offset"`
}

type TextRegion struct {
	Rect         Rect    `json:"rect"`
	Headline     string  `json:"headline"`
	HeadlineSize float64 `json:"headline_size"`
	Subhead      string  `json:"subhead,omitempty"`
	SubheadSize  float64 `json:"subhead_size,omitempty"`
	Centered     bool    `json:"centered"`
}

// CTARegion is always a filled rounded button in the accent color with a
// white label. Padding and font shrink under micro.
type CTARegion struct {
	Rect     Rect    `json:"rect"`
	Label    string  `json:"label"`
	FontSize float64 `json:"font_size"`
	Color    string  `json:"color"`
}

type Frame struct {
	Width          int                     `json:"width"`
	Height         int                     `json:"height"`
	Classification geometry.Classification `json:"classification"`
	Palette        Palette                 `json:"palette"`
	Image          ImageRegion             `json:"image"`
	Text           TextRegion              `json:"text"`
	CTA            CTARegion               `json:"cta"`
}

const (
	pad      = 12.0
	microPad = 6.0

	microImageWidth   = 48.0
	skyscraperTopGap  = 16.0
	leaderboardImageW = 0.25

	ctaFontSize      = 13.0
	ctaMicroFontSize = 9.0
	ctaPadX          = 16.0
	ctaPadY          = 8.0
	ctaMicroPadX     = 8.0
	ctaMicroPadY     = 4.0
)

func headlineSize(c geometry.Classification) float64 {
	if c.Class == geometry.ClassLeaderboard && c.Micro {
		return 11
	}
	if c.Class == geometry.ClassSkyscraper {
		return 20
	}
	return 18
}

func subheadSize(c geometry.Classification) float64 {
	if c.Class == geometry.ClassSkyscraper {
		return 14
	}
	return 12
}

func iconSize(c geometry.Classification) float64 {
	switch {
	case c.Micro:
		return 16
	case c.Class == geometry.ClassLeaderboard:
		return 24
	default:
		return 32
	}
}

func ctaMetrics(micro bool) (fontSize, padX, padY float64) {
	if micro {
		return ctaMicroFontSize, ctaMicroPadX, ctaMicroPadY
	}
	return ctaFontSize, ctaPadX, ctaPadY
}

// Compose derives the frame for one target size from the shared state.
// hasImage selects between the image transform and the placeholder marker.
func Compose(width, height int, content models.CreativeContent, transform models.ImageTransform, hasImage bool) Frame {
	c := geometry.Classify(width, height)
	w := float64(width)
	h := float64(height)

	f := Frame{
		Width:          width,
		Height:         height,
		Classification: c,
		Palette:        PaletteFor(content.DarkTheme),
	}

	ctaFont, ctaX, ctaY := ctaMetrics(c.Micro)
	ctaH := ctaFont + 2*ctaY
	labelW, _ := typeface.Measure(content.CTALabel, ctaFont, false)
	inlineCTAW := labelW + 2*ctaX

	edge := pad
	if c.Micro {
		edge = microPad
	}

	switch c.Class {
	case geometry.ClassLeaderboard:
		imgW := leaderboardImageW * w
		if c.Micro {
			imgW = microImageWidth
		}
		f.Image.Rect = Rect{X: w - imgW, Y: 0, W: imgW, H: h}
		f.CTA.Rect = Rect{
			X: w - imgW - edge - inlineCTAW,
			Y: (h - ctaH) / 2,
			W: inlineCTAW,
			H: ctaH,
		}
		f.Text.Rect = Rect{
			X: edge,
			Y: 0,
			W: f.CTA.Rect.X - 2*edge,
			H: h,
		}
		f.Text.Centered = false

	case geometry.ClassSkyscraper:
		f.Image.Rect = Rect{X: 0, Y: skyscraperTopGap, W: w, H: h / 3}
		f.CTA.Rect = Rect{X: edge, Y: h - edge - ctaH, W: w - 2*edge, H: ctaH}
		textY := skyscraperTopGap + h/3 + edge
		f.Text.Rect = Rect{X: edge, Y: textY, W: w - 2*edge, H: max(0, f.CTA.Rect.Y-edge-textY)}
		f.Text.Centered = true

	default:
		f.Image.Rect = Rect{X: 0, Y: 0, W: w, H: h / 2}
		f.CTA.Rect = Rect{X: edge, Y: h - edge - ctaH, W: w - 2*edge, H: ctaH}
		textY := h/2 + edge
		f.Text.Rect = Rect{X: edge, Y: textY, W: w - 2*edge, H: max(0, f.CTA.Rect.Y-edge-textY)}
		f.Text.Centered = true
	}

	f.Image.Present = hasImage
	f.Image.Scale = transform.Scale
	f.Image.Offset = transform.Offset
	if !hasImage {
		f.Image.IconSize = iconSize(c)
	}

	f.Text.Headline = content.Headline
	f.Text.HeadlineSize = headlineSize(c)
	if !c.Micro {
		f.Text.Subhead = content.Subhead
		f.Text.SubheadSize = subheadSize(c)
	}

	f.CTA.Label = content.CTALabel
	f.CTA.FontSize = ctaFont
	f.CTA.Color = content.AccentColor

	return f
}
