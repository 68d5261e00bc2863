package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/fracgen/internal/fractal"
)

// OutlineToSVG renders an outline as stroked SVG lines on a dark
// background. Segments already live in pixel coordinates, so the
// viewBox matches the requested canvas directly.
func OutlineToSVG(o fractal.Outline, w, h int, stroke string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="%s" stroke-width="1.5" fill="none">
`, w, h, w, h, stroke))

	// Contiguous segments join into one polyline path; a pen lift
	// starts a new M.
	open := false
	var last fractal.Pt
	for _, s := range o {
		if !open || s.A != last {
			if open {
				sb.WriteString("\"/>\n")
			}
			sb.WriteString(fmt.Sprintf(`<path d="M%.1f,%.1f`, s.A.X, s.A.Y))
			open = true
		}
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", s.B.X, s.B.Y))
		last = s.B
	}
	if open {
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SVGFile writes an outline to path.
func SVGFile(path string, o fractal.Outline, w, h int, stroke string) error {
	return os.WriteFile(path, []byte(OutlineToSVG(o, w, h, stroke)), 0644)
}
