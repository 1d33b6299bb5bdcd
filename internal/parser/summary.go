package parser

import (
	"regexp"
	"strings"
)

var (
	allCapsHeaderPattern   = regexp.MustCompile(`^[A-Z ]{3,}$`)
	shortHeaderLinePattern = regexp.MustCompile(`^[A-Z][A-Z\s]+[:\-]?\s*$`)
	multiSpacePattern      = regexp.MustCompile(`\s{2,}`)
)

// ExtractSummary flattens a captured summary region to
// a single sentence-joined string. Besides the shared section boundaries it
// stops early at an all-caps header line, since summaries frequently run
// straight into an unspaced section title.
func ExtractSummary(sec Section) string {
	if sec.Empty() {
		return ""
	}

	var kept []string
	for _, line := range sec.Lines {
		if allCapsHeaderPattern.MatchString(line) {
			break
		}
		if shortHeaderLinePattern.MatchString(line) && len(strings.Fields(line)) <= 3 {
			break
		}
		kept = append(kept, strings.Join(strings.Fields(line), " "))
	}
	if len(kept) == 0 {
		return ""
	}

	summary := strings.TrimSpace(strings.Join(kept, " "))
	return multiSpacePattern.ReplaceAllString(summary, " ")
}
