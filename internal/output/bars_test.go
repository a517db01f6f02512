package output

import (
	"strings"
	"testing"
)

func TestCountBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	full := CountBar(10, 10, 10)
	if strings.Count(full, "█") != 10 {
		t.Errorf("expected full bar, got %q", full)
	}

	half := CountBar(5, 10, 10)
	if strings.Count(half, "█") != 5 {
		t.Errorf("expected half bar, got %q", half)
	}

	// A non-zero count always shows at least one cell.
	tiny := CountBar(1, 1000, 10)
	if strings.Count(tiny, "█") != 1 {
		t.Errorf("expected minimal bar, got %q", tiny)
	}

	empty := CountBar(0, 10, 10)
	if strings.Count(empty, "█") != 0 {
		t.Errorf("expected empty bar, got %q", empty)
	}
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := TrendArrow(3); !strings.Contains(got, "▲ +3") {
		t.Errorf("unexpected up arrow %q", got)
	}
	if got := TrendArrow(-2); !strings.Contains(got, "▼ -2") {
		t.Errorf("unexpected down arrow %q", got)
	}
	if got := TrendArrow(0); !strings.Contains(got, "─") {
		t.Errorf("unexpected zero indicator %q", got)
	}
}

func TestSection(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := Section("Languages")
	if !strings.Contains(got, "Languages") {
		t.Errorf("missing title in %q", got)
	}
	if !strings.Contains(got, "─") {
		t.Errorf("missing rule in %q", got)
	}
}
