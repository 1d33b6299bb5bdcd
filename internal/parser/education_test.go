package parser

import (
	"reflect"
	"testing"
)

func TestExtractEducationSingleEntry(t *testing.T) {
	lines := Lines(`EDUCATION
Bachelor of Technology in Computer Science
Example University
2018 - 2022
CGPA: 8.6
`)

	sec, ok := Segment(lines, SectionEducation)
	if !ok {
		t.Fatalf("expected education section")
	}

	got := ExtractEducation(sec)
	want := []EducationEntry{{
		Degree:      "Bachelor of Technology in Computer Science",
		Institution: "Example University",
		Duration:    "2018 - 2022",
		Grade:       "CGPA: 8.6",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestExtractEducationMultipleEntries(t *testing.T) {
	lines := Lines(`EDUCATION
Master of Science in Data Engineering
Example Institute of Technology
2020 - 2022
Graduated with distinction
Bachelor of Engineering
State College
2016 - 2020
`)

	sec, ok := Segment(lines, SectionEducation)
	if !ok {
		t.Fatalf("expected education section")
	}

	got := ExtractEducation(sec)
	if len(got) != 2 {
		t.Fatalf("expected two entries, got %d: %+v", len(got), got)
	}
	if got[0].Degree != "Master of Science in Data Engineering" {
		t.Fatalf("unexpected first degree %q", got[0].Degree)
	}
	if got[1].Degree != "Bachelor of Engineering" {
		t.Fatalf("unexpected second degree %q", got[1].Degree)
	}
	if got[1].Institution != "State College" {
		t.Fatalf("unexpected second institution %q", got[1].Institution)
	}
}

func TestExtractEducationPartialEntry(t *testing.T) {
	lines := Lines("EDUCATION\nExample University\n2019\n")

	sec, ok := Segment(lines, SectionEducation)
	if !ok {
		t.Fatalf("expected education section")
	}

	got := ExtractEducation(sec)
	want := []EducationEntry{{Institution: "Example University", Duration: "2019"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestExtractEducationEmptySection(t *testing.T) {
	if got := ExtractEducation(Section{}); got != nil {
		t.Fatalf("expected nil for empty section, got %v", got)
	}
}
