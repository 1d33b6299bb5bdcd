package parser

import "regexp"

// EducationEntry is one qualification. All fields are optional; an entry is
// worth keeping as soon as any slot is filled.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Grade       string `json:"grade"`
}

var (
	degreePattern      = regexp.MustCompile(`(?i)(bachelor|master|secondary|diploma|b\.tech|m\.tech|ph\.d|cbse)`)
	institutionPattern = regexp.MustCompile(`(?i)(university|college|school|institute)`)
	durationPattern    = regexp.MustCompile(`\d{4}.*\d{4}|\d{4}`)
	gradePattern       = regexp.MustCompile(`(?i)(cgpa|percentage|gpa)`)
)

// ExtractEducation slot-fills entries from an education section. Each line
// is classified into at most one of four slots (degree, institution,
// duration, grade), first match wins and each slot fills once per entry.
// A line matching no slot while degree and institution are both present
// closes the entry; the triggering line is re-tested against the degree and
// institution patterns to seed the next one. The boundary is heuristic, not
// structural: two back-to-back degrees with no separator line merge wrong,
// which is accepted.
func ExtractEducation(sec Section) []EducationEntry {
	if sec.Empty() {
		return nil
	}

	var entries []EducationEntry
	var current EducationEntry

	for _, line := range sec.Lines {
		switch {
		case current.Degree == "" && degreePattern.MatchString(line):
			current.Degree = line
		case current.Institution == "" && institutionPattern.MatchString(line):
			current.Institution = line
		case current.Duration == "" && durationPattern.MatchString(line):
			current.Duration = line
		case current.Grade == "" && gradePattern.MatchString(line):
			current.Grade = line
		default:
			if current.Degree != "" && current.Institution != "" {
				entries = append(entries, current)
				current = EducationEntry{}
				if degreePattern.MatchString(line) {
					current.Degree = line
				} else if institutionPattern.MatchString(line) {
					current.Institution = line
				}
			}
		}
	}

	if current != (EducationEntry{}) {
		entries = append(entries, current)
	}
	return entries
}
