package output

import (
	"fmt"
	"strings"
)

// CountBar renders a proportional bar for one histogram bucket.
// Example: "████████░░ 42"
func CountBar(count, max, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if max > 0 {
		filled = count * width / max
	}
	if filled > width {
		filled = width
	}
	if filled < 1 && count > 0 {
		filled = 1
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", StyleSuccess.Render(bar), StyleMuted.Render(fmt.Sprintf("%d", count)))
}

// TrendArrow returns a styled indicator for the change in a counter
// between two scans. Growth is neutral information here, so both
// directions render muted.
func TrendArrow(delta int) string {
	switch {
	case delta > 0:
		return StyleMuted.Render(fmt.Sprintf("▲ +%d", delta))
	case delta < 0:
		return StyleMuted.Render(fmt.Sprintf("▼ %d", delta))
	default:
		return StyleMuted.Render("─")
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
