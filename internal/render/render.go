// internal/render/render.go
//
// Rasterizes a layout.Frame to PNG with fogleman/gg. Everything is drawn
// in device pixels: rects and font sizes are multiplied by the pixel
// ratio up front, which keeps glyphs crisp at high density instead of
// bitmap-scaling them.
package render

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"adproof/internal/layout"
	"adproof/internal/typeface"
)

// DefaultPixelRatio matches the export density of the original tool.
const DefaultPixelRatio = 2.0

const ctaLabelColor = "#FFFFFF"

// PNG renders the frame at the given pixel ratio. img may be nil; the
// frame's placeholder marker is drawn instead. Identical inputs produce
// identical bytes.
func PNG(f layout.Frame, img image.Image, pixelRatio float64) ([]byte, error) {
	k := pixelRatio
	if k <= 0 {
		k = DefaultPixelRatio
	}

	dc := gg.NewContext(int(math.Round(float64(f.Width)*k)), int(math.Round(float64(f.Height)*k)))

	dc.SetHexColor(f.Palette.Background)
	dc.Clear()

	if f.Image.Present && img != nil {
		drawImage(dc, f, img, k)
	} else {
		drawPlaceholder(dc, f, k)
	}
	drawText(dc, f, k)
	drawCTA(dc, f, k)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaled(r layout.Rect, k float64) layout.Rect {
	return layout.Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}

// drawImage cover-fits the creative into its region, then applies the
// user transform: scale about the region center, offset in logical
// pixels. The region clips whatever the transform pushes outside.
func drawImage(dc *gg.Context, f layout.Frame, img image.Image, k float64) {
	r := scaled(f.Image.Rect, k)
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}

	cover := math.Max(r.W/iw, r.H/ih)
	s := cover * f.Image.Scale
	dw := int(math.Round(iw * s))
	dh := int(math.Round(ih * s))
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	x := r.X + (r.W-float64(dw))/2 + f.Image.Offset.X*k
	y := r.Y + (r.H-float64(dh))/2 + f.Image.Offset.Y*k

	resized := imaging.Resize(img, dw, dh, imaging.Lanczos)

	dc.Push()
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Clip()
	dc.DrawImage(resized, int(math.Round(x)), int(math.Round(y)))
	dc.ResetClip()
	dc.Pop()
}

// drawPlaceholder fills the image region with the neutral palette color
// and marks it with an icon-sized crossed square.
func drawPlaceholder(dc *gg.Context, f layout.Frame, k float64) {
	r := scaled(f.Image.Rect, k)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	dc.SetHexColor(f.Palette.Placeholder)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Fill()

	icon := f.Image.IconSize * k
	if icon <= 0 {
		return
	}
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	half := icon / 2

	dc.SetHexColor(f.Palette.Mark)
	dc.SetLineWidth(math.Max(1, k))
	dc.DrawRectangle(cx-half, cy-half, icon, icon)
	dc.Stroke()
	dc.DrawLine(cx-half, cy-half, cx+half, cy+half)
	dc.DrawLine(cx+half, cy-half, cx-half, cy+half)
	dc.Stroke()
}

func drawText(dc *gg.Context, f layout.Frame, k float64) {
	r := scaled(f.Text.Rect, k)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	headSize := f.Text.HeadlineSize * k
	subSize := f.Text.SubheadSize * k
	headLine := headSize * 1.25
	subLine := subSize * 1.3
	gap := 4 * k

	var heads, subs []string
	if f.Text.Headline != "" {
		heads = typeface.Wrap(f.Text.Headline, headSize, true, r.W)
	}
	if f.Text.Subhead != "" {
		subs = typeface.Wrap(f.Text.Subhead, subSize, false, r.W)
	}
	if len(heads) == 0 && len(subs) == 0 {
		return
	}

	total := float64(len(heads))*headLine + float64(len(subs))*subLine
	if len(heads) > 0 && len(subs) > 0 {
		total += gap
	}
	y := r.Y + (r.H-total)/2
	if y < r.Y {
		y = r.Y
	}

	dc.SetFontFace(typeface.Face(headSize, true))
	dc.SetHexColor(f.Palette.Text)
	for _, line := range heads {
		y += headLine
		if f.Text.Centered {
			dc.DrawStringAnchored(line, r.X+r.W/2, y, 0.5, 0)
		} else {
			dc.DrawString(line, r.X, y)
		}
	}

	if len(subs) == 0 {
		return
	}
	if len(heads) > 0 {
		y += gap
	}
	dc.SetFontFace(typeface.Face(subSize, false))
	dc.SetHexColor(f.Palette.Subtext)
	for _, line := range subs {
		y += subLine
		if f.Text.Centered {
			dc.DrawStringAnchored(line, r.X+r.W/2, y, 0.5, 0)
		} else {
			dc.DrawString(line, r.X, y)
		}
	}
}

// drawCTA paints the pill button in the accent color with a centered
// white label.
func drawCTA(dc *gg.Context, f layout.Frame, k float64) {
	r := scaled(f.CTA.Rect, k)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	dc.SetHexColor(f.CTA.Color)
	dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, r.H/2)
	dc.Fill()

	if f.CTA.Label == "" {
		return
	}
	dc.SetFontFace(typeface.Face(f.CTA.FontSize*k, false))
	dc.SetHexColor(ctaLabelColor)
	dc.DrawStringAnchored(f.CTA.Label, r.X+r.W/2, r.Y+r.H/2, 0.5, 0.35)
}
