package metrics

import (
	"strings"
	"testing"
)

func TestRenderExposesCounters(t *testing.T) {
	IncParseStarted()
	IncParseCompleted()
	IncSemanticDegraded()
	ObserveParseDurationMs(42)

	out := Render()
	for _, name := range []string{
		"parse_started_total",
		"parse_completed_total",
		"parse_failed_total",
		"semantic_degraded_total",
		"parse_duration_ms_bucket",
		"parse_duration_ms_sum",
		"parse_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output:\n%s", name, out)
		}
	}
	if !strings.Contains(out, `parse_duration_ms_bucket{le="+Inf"}`) {
		t.Fatalf("expected +Inf bucket:\n%s", out)
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("unexpected count %d", snap.count)
	}
	// Per-bucket counts; rendering accumulates them.
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts %v", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("unexpected sum %v", snap.sum)
	}
}
