package console

import (
	"strings"
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	cases := map[uint64]string{
		0:         "0",
		999:       "999",
		1000:      "1,000",
		1234567:   "1,234,567",
		100000000: "100,000,000",
	}
	for n, want := range cases {
		if got := FormatNumber(n); got != want {
			t.Fatalf("FormatNumber(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestFormatHashRate(t *testing.T) {
	if got := FormatHashRate(500); got != "500/s" {
		t.Fatalf("FormatHashRate(500) = %s, want 500/s", got)
	}
	if got := FormatHashRate(2500); got != "2.5K/s" {
		t.Fatalf("FormatHashRate(2500) = %s, want 2.5K/s", got)
	}
	if got := FormatHashRate(3_200_000); got != "3.2M/s" {
		t.Fatalf("FormatHashRate(3200000) = %s, want 3.2M/s", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(500 * time.Millisecond); got != "500ms" {
		t.Fatalf("FormatDuration(500ms) = %s, want 500ms", got)
	}
	if got := FormatDuration(90 * time.Second); got != "1m 30s" {
		t.Fatalf("FormatDuration(90s) = %s, want 1m 30s", got)
	}
}

func TestReporterSummaryContainsMatchCount(t *testing.T) {
	var sb strings.Builder
	r := New(&sb)
	r.Summary(3, 1000, 2*time.Second)
	if !strings.Contains(sb.String(), "3") {
		t.Fatalf("Summary output missing match count: %q", sb.String())
	}
}

func TestReporterWarning(t *testing.T) {
	var sb strings.Builder
	r := New(&sb)
	r.Warning("GPU backend unavailable")
	if !strings.Contains(sb.String(), "GPU backend unavailable") {
		t.Fatalf("Warning output missing message: %q", sb.String())
	}
}
