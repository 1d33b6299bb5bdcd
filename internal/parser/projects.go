package parser

import (
	"regexp"
	"strings"
)

var bulletPattern = regexp.MustCompile(`^(•|-|\*)\s+`)

// ExtractProjects groups a projects section into entries. A bullet marker
// starts a new entry; everything until the next marker belongs to the entry,
// joined into one descriptive string.
func ExtractProjects(sec Section) []string {
	if sec.Empty() {
		return nil
	}

	var projects []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		if joined := strings.TrimSpace(strings.Join(current, " ")); joined != "" {
			projects = append(projects, joined)
		}
		current = nil
	}

	for _, line := range sec.Lines {
		if bulletPattern.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return projects
}
