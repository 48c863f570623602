package components

import (
	"strings"

	"github.com/hkawai/kioku/internal/ui/theme"
)

// RenderProgressBar renders a horizontal bar showing done out of total,
// e.g. study position within the due queue.
func RenderProgressBar(done, total, width int) string {
	if width <= 0 {
		return ""
	}
	if total <= 0 {
		return theme.ProgressEmpty.Render(strings.Repeat(" ", width))
	}
	if done > total {
		done = total
	}
	filled := done * width / total
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled))
}
