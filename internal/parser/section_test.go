package parser

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestPartitionAssignsEveryLineOnce(t *testing.T) {
	lines := Lines(`SUMMARY
Engineer who enjoys infrastructure work.

EXPERIENCE
Engineer Jan 2020 - Present
Acme Corp

EDUCATION
Example University

SKILLS
Go, SQL
`)

	got := Partition(lines)
	want := map[SectionLabel][]string{
		SectionSummary:    {"Engineer who enjoys infrastructure work."},
		SectionExperience: {"Engineer Jan 2020 - Present", "Acme Corp"},
		SectionEducation:  {"Example University"},
		SectionSkills:     {"Go, SQL"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d sections, got %d: %v", len(want), len(got), got)
	}
	for label, lines := range want {
		sec, ok := got[label]
		if !ok {
			t.Fatalf("missing section %q", label)
		}
		if !reflect.DeepEqual(sec.Lines, lines) {
			t.Fatalf("section %q: expected %v, got %v", label, lines, sec.Lines)
		}
	}
}

func TestPartitionRepeatedHeadingAppends(t *testing.T) {
	lines := Lines("EXPERIENCE\nFirst stint.\nEDUCATION\nExample University\nEXPERIENCE\nSecond stint.\n")

	sec, ok := Partition(lines)[SectionExperience]
	if !ok {
		t.Fatalf("expected experience section")
	}
	want := []string{"First stint.", "Second stint."}
	if !reflect.DeepEqual(sec.Lines, want) {
		t.Fatalf("expected repeated heading to append, got %v", sec.Lines)
	}
}

func TestPartitionStopKeywordClosesRegion(t *testing.T) {
	lines := Lines("EDUCATION\nExample University\nCERTIFICATIONS\nAWS Solutions Architect\n")

	sec, ok := Partition(lines)[SectionEducation]
	if !ok {
		t.Fatalf("expected education section")
	}
	want := []string{"Example University"}
	if !reflect.DeepEqual(sec.Lines, want) {
		t.Fatalf("expected certifications to close the region, got %v", sec.Lines)
	}
}

func TestSegmentCapturesBetweenHeadings(t *testing.T) {
	lines := Lines("John Doe\n\nEDUCATION\nExample University\n2018 - 2022\n\nSKILLS\nGo, SQL\n")

	sec, ok := Segment(lines, SectionEducation)
	if !ok {
		t.Fatalf("expected education section")
	}
	if sec.Start != 2 {
		t.Fatalf("expected heading at line 2, got %d", sec.Start)
	}
	want := []string{"Example University", "2018 - 2022"}
	if !reflect.DeepEqual(sec.Lines, want) {
		t.Fatalf("expected %v, got %v", want, sec.Lines)
	}
}

func TestSegmentStopsOnBlankRun(t *testing.T) {
	lines := Lines("SUMMARY\nFirst sentence.\n\n\nOrphan paragraph far below.\n")

	sec, ok := Segment(lines, SectionSummary)
	if !ok {
		t.Fatalf("expected summary section")
	}
	want := []string{"First sentence."}
	if !reflect.DeepEqual(sec.Lines, want) {
		t.Fatalf("expected blank run to end capture, got %v", sec.Lines)
	}
}

func TestSegmentStopsAtLineCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("SKILLS\n")
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&b, "skill number %d\n", i)
	}

	sec, ok := Segment(Lines(b.String()), SectionSkills)
	if !ok {
		t.Fatalf("expected skills section")
	}
	if len(sec.Lines) != 40 {
		t.Fatalf("expected capture capped at 40 lines, got %d", len(sec.Lines))
	}
}

func TestSegmentMissingHeading(t *testing.T) {
	lines := Lines("John Doe\njohn@example.com\nSome free text with no headings at all.\n")

	if _, ok := Segment(lines, SectionExperience); ok {
		t.Fatalf("expected no section without a heading")
	}
}

func TestSegmentHeadingWithNoBody(t *testing.T) {
	lines := Lines("PROJECTS\n\n\n")

	if _, ok := Segment(lines, SectionProjects); ok {
		t.Fatalf("expected empty section to report absent")
	}
}

func TestSegmentUnknownLabel(t *testing.T) {
	if _, ok := Segment([]string{"EDUCATION", "x"}, SectionLabel("bogus")); ok {
		t.Fatalf("expected unknown label to report absent")
	}
}

func TestLinesStripsCarriageReturns(t *testing.T) {
	got := Lines("first\r\nsecond\r\nthird")
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
