package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/habitstack/pkg/stats"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		series []float64
		want   string
	}{
		{nil, ""},
		{[]float64{0, 1}, "▁█"},
		{[]float64{0.5}, "▅"},
		{[]float64{-1, 2}, "▁█"},
	}
	for _, tt := range tests {
		if got := sparkline(tt.series); got != tt.want {
			t.Errorf("sparkline(%v) = %q, want %q", tt.series, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(stats.Rate{}); got != "–" {
		t.Errorf("formatPercent(zero) = %q", got)
	}
	if got := formatPercent(stats.Rate{Eligible: 3, Completed: 1, Rate: 1.0 / 3}); got != "33%" {
		t.Errorf("formatPercent(1/3) = %q, want 33%%", got)
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	printSuccess(&buf, "saved %d", 3)
	printWarning(&buf, "careful")
	printFile(&buf, "/tmp/x.svg")
	printStats(&buf, 4, 3, true)

	out := buf.String()
	for _, want := range []string{"saved 3", "careful", "/tmp/x.svg", "4 habits", "3 edges", "cached"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
