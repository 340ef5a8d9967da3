package components

import (
	"math"
	"strings"

	"folio/internal/ui/theme"
)

// ScrollFraction is offset / (content - viewport) clamped to 0..1. A page
// that fits the viewport reports 0.
func ScrollFraction(offset, content, viewport int) float64 {
	scrollable := content - viewport
	if scrollable <= 0 {
		return 0
	}
	return math.Min(math.Max(float64(offset)/float64(scrollable), 0), 1)
}

// ProgressBar draws a one-row bar of width cells filled to frac.
func ProgressBar(width int, frac float64, s theme.Styles) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(frac * float64(width)))
	filled = min(max(filled, 0), width)
	return s.Accent.Render(strings.Repeat("━", filled)) +
		s.Muted.Render(strings.Repeat("─", width-filled))
}
