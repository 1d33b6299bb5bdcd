package parser

import "strings"

// SectionLabel identifies a semantic region of a resume.
type SectionLabel string

const (
	SectionSummary    SectionLabel = "summary"
	SectionExperience SectionLabel = "experience"
	SectionEducation  SectionLabel = "education"
	SectionProjects   SectionLabel = "projects"
	SectionSkills     SectionLabel = "skills"
)

// Section is a contiguous labeled slice of the input document. Start is the
// index of the heading line; blank lines inside the captured range are not
// retained.
type Section struct {
	Label SectionLabel
	Start int
	Lines []string
}

// Empty reports whether the section captured no content.
func (s Section) Empty() bool {
	return len(s.Lines) == 0
}

// sectionFamily holds the boundary heuristics for one section label. The
// blank-run limit and line cap differ per family because real resumes space
// their sections very differently (project lists tend to be airy, education
// blocks dense).
type sectionFamily struct {
	start      []string
	stop       []string
	blankLimit int
	maxLines   int
}

var sectionFamilies = map[SectionLabel]sectionFamily{
	SectionSummary: {
		start: []string{
			"summary", "professional summary", "objective", "career objective",
			"career summary", "profile", "personal profile", "about me", "overview",
		},
		stop: []string{
			"certification", "achievements",
		},
		blankLimit: 2,
		maxLines:   10,
	},
	SectionExperience: {
		start: []string{
			"experience", "professional experience", "work experience", "employment",
			"internship", "work history", "career", "job experience", "industry experience",
		},
		stop: []string{
			"certification",
		},
		blankLimit: 5,
		maxLines:   80,
	},
	SectionEducation: {
		start:      []string{"education", "academic", "qualifications"},
		stop:       []string{"certification"},
		blankLimit: 2,
		maxLines:   50,
	},
	SectionProjects: {
		start:      []string{"projects", "portfolio", "personal projects"},
		stop:       []string{"certification"},
		blankLimit: 8,
		maxLines:   80,
	},
	SectionSkills: {
		start:      []string{"skills", "technical skills", "technologies", "tools"},
		stop:       []string{"certification"},
		blankLimit: 2,
		maxLines:   40,
	},
}

// labelOrder fixes the heading-test order so that a line matching two
// families' start keywords resolves deterministically.
var labelOrder = []SectionLabel{
	SectionSummary, SectionExperience, SectionEducation, SectionProjects, SectionSkills,
}

// Partition scans the document once and slices it into labeled regions. It is
// a single finite-state machine with a current-section register: a line whose
// lower-cased trimmed form begins with a start keyword of any family switches
// the register to that family (the heading line itself is not captured); a
// line matching the current family's stop keywords, a blank run reaching the
// family limit, or the captured line count reaching the family cap closes the
// region without opening another. Regions never overlap. A repeated heading
// reopens its region and appends.
//
// Heading keywords are matched by prefix, so a keyword at the start of an
// ordinary sentence is a false boundary. That is a known limitation of the
// heuristic.
func Partition(lines []string) map[SectionLabel]Section {
	sections := make(map[SectionLabel]Section)

	var current SectionLabel
	var family sectionFamily
	capturing := false
	blankRun := 0

	for i, line := range lines {
		clean := strings.TrimSpace(line)
		lower := strings.ToLower(clean)

		if label, ok := matchHeading(lower); ok {
			sec, seen := sections[label]
			if !seen {
				sec = Section{Label: label, Start: i}
			}
			sections[label] = sec
			current = label
			family = sectionFamilies[label]
			capturing = true
			blankRun = 0
			continue
		}

		if !capturing {
			continue
		}

		if hasAnyPrefix(lower, family.stop) {
			capturing = false
			continue
		}
		if clean == "" {
			blankRun++
			if blankRun >= family.blankLimit {
				capturing = false
			}
			continue
		}
		blankRun = 0

		sec := sections[current]
		sec.Lines = append(sec.Lines, clean)
		sections[current] = sec
		if len(sec.Lines) >= family.maxLines {
			capturing = false
		}
	}

	for label, sec := range sections {
		if sec.Empty() {
			delete(sections, label)
		}
	}
	return sections
}

// Segment returns the labeled region from a fresh partition of lines. It is
// a convenience for callers that need a single section.
func Segment(lines []string, label SectionLabel) (Section, bool) {
	if _, known := sectionFamilies[label]; !known {
		return Section{}, false
	}
	sec, ok := Partition(lines)[label]
	return sec, ok
}

func matchHeading(lower string) (SectionLabel, bool) {
	for _, label := range labelOrder {
		if hasAnyPrefix(lower, sectionFamilies[label].start) {
			return label, true
		}
	}
	return "", false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Lines splits a raw document into its line sequence. Carriage returns from
// Windows-origin text are stripped so downstream matching sees clean lines.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
