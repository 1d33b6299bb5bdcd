package parser

import (
	"regexp"
	"strings"
)

// ExperienceEntry is one position held by the candidate. Duration is the
// free-text span from the resume, not a parsed date range.
type ExperienceEntry struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location"`
	Description []string `json:"description"`
}

const monthAbbrev = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`

// positionPattern matches a "<position> <Mon YYYY> - <Mon YYYY|present>"
// header line. En dash, em dash and hyphen separators all occur in the wild.
var positionPattern = regexp.MustCompile(
	`(?i)^(?P<position>.+?)\s+(?P<duration>` + monthAbbrev + `[a-z]*\.?\s*\d{4}\s*[–—-]\s*(?:` + monthAbbrev + `[a-z]*\.?\s*)?(?:\d{4}|present|current))`,
)

// ExtractExperience itemizes an experience section into entries. A line
// matching the position/duration grammar closes the previous open entry and
// opens a new one; the company is taken from the line that follows the
// header. Every other line while an entry is open accumulates into that
// entry's description. The last open entry is flushed at the end of the
// section, an all-caps run (the next section's title bleeding in) ends the
// scan early.
func ExtractExperience(sec Section) []ExperienceEntry {
	if sec.Empty() {
		return nil
	}

	var entries []ExperienceEntry
	var current *ExperienceEntry

	for i := 0; i < len(sec.Lines); i++ {
		line := sec.Lines[i]

		if m := positionPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			entry := ExperienceEntry{
				Position:    strings.TrimSpace(m[positionPattern.SubexpIndex("position")]),
				Duration:    strings.TrimSpace(m[positionPattern.SubexpIndex("duration")]),
				Description: []string{},
			}
			if i+1 < len(sec.Lines) && !positionPattern.MatchString(sec.Lines[i+1]) {
				entry.Company = sec.Lines[i+1]
				i++
			}
			current = &entry
			continue
		}

		if current == nil {
			continue
		}
		if allCapsHeaderPattern.MatchString(line) {
			break
		}
		current.Description = append(current.Description, line)
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}
