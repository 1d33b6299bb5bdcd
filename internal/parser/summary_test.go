package parser

import "testing"

func TestExtractSummaryJoinsLines(t *testing.T) {
	lines := Lines(`PROFESSIONAL SUMMARY
Backend engineer with eight years of experience
building   distributed systems in Go.

EXPERIENCE
Senior Engineer Jan 2020 - Present
`)

	sec, ok := Segment(lines, SectionSummary)
	if !ok {
		t.Fatalf("expected summary section")
	}

	got := ExtractSummary(sec)
	want := "Backend engineer with eight years of experience building distributed systems in Go."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractSummaryStopsAtAllCapsHeader(t *testing.T) {
	lines := Lines("OBJECTIVE\nSeeking a platform role.\nTECHNICAL STRENGTHS\nGo, SQL\n")

	sec, ok := Segment(lines, SectionSummary)
	if !ok {
		t.Fatalf("expected summary section")
	}
	got := ExtractSummary(sec)
	if got != "Seeking a platform role." {
		t.Fatalf("expected header to end summary, got %q", got)
	}
}

func TestExtractSummaryEmptySection(t *testing.T) {
	if got := ExtractSummary(Section{}); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}
