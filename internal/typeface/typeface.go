// internal/typeface/typeface.go
//
// Text measurement for the layout engine and the rasterizer. The Go fonts
// are embedded so measurement is deterministic and needs no font files on
// disk.
package typeface

import (
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	loadOnce    sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
)

func load() {
	loadOnce.Do(func() {
		var err error
		regularFont, err = truetype.Parse(goregular.TTF)
		if err != nil {
			panic("typeface: parse embedded regular font: " + err.Error())
		}
		boldFont, err = truetype.Parse(gobold.TTF)
		if err != nil {
			panic("typeface: parse embedded bold font: " + err.Error())
		}
	})
}

// Face returns a font face at the given pixel size.
func Face(size float64, bold bool) font.Face {
	load()
	f := regularFont
	if bold {
		f = boldFont
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// Measure returns the pixel width and line height of s at the given size.
func Measure(s string, size float64, bold bool) (width, height float64) {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(Face(size, bold))
	return dc.MeasureString(s)
}

// Wrap breaks s into lines that fit within maxWidth, breaking on spaces.
// A single word wider than maxWidth stays on its own line unbroken.
func Wrap(s string, size float64, bold bool, maxWidth float64) []string {
	if s == "" {
		return nil
	}

	dc := gg.NewContext(1, 1)
	dc.SetFontFace(Face(size, bold))

	if w, _ := dc.MeasureString(s); w <= maxWidth {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := current
		if candidate != "" {
			candidate += " "
		}
		candidate += word

		if w, _ := dc.MeasureString(candidate); w <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
