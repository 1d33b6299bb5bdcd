package parser

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	// Deliberately loose; a false-positive phone is cheaper to discard
	// downstream than a missed one is to recover.
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-\s]?)?\(?\d{3,5}\)?[-\s]?\d{5,10}`)

	upperNamePattern = regexp.MustCompile(`^[A-Z][A-Z\s.]{2,}$`)
	upperWordPattern = regexp.MustCompile(`^[A-Z]{1,3}\.?$`)
	titleNamePattern = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z]\.?| [A-Z][a-z]+){0,3}$`)

	nonAlphaPattern = regexp.MustCompile(`[\W\d_]+`)
)

// socialDomains is the platform allow-list for link extraction.
var socialDomains = []string{
	"linkedin.com", "github.com", "leetcode.com", "behance.net",
	"medium.com", "twitter.com", "dribbble.com", "dev.to", "portfolio",
}

var socialPattern = buildSocialPattern()

func buildSocialPattern() *regexp.Regexp {
	quoted := make([]string, len(socialDomains))
	for i, d := range socialDomains {
		quoted[i] = regexp.QuoteMeta(d)
	}
	return regexp.MustCompile(`(?i)(?:(?:https?://)?(?:www\.)?)?((?:` + strings.Join(quoted, "|") + `)[^\s,]*)`)
}

// ExtractEmail returns the first email-shaped token in the document, or ""
// if none exists.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped token in the document, or ""
// if none exists.
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// ExtractName recovers the candidate name from the top of the document.
// Rules are tried in priority order against the first ten non-empty lines:
//
//  1. an all-caps run of 2-5 words (letters or initials like "J.") is
//     title-cased and returned
//  2. a Title-Case run of up to 4 words is returned verbatim
//  3. otherwise the name is derived from the email local part
//
// The result is "" only when no heading line matches and no email is
// available.
func ExtractName(text string, email string) string {
	seen := 0
	for _, line := range Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 10 {
			break
		}

		if upperNamePattern.MatchString(line) {
			words := strings.Fields(line)
			if len(words) > 1 && len(words) <= 5 && allNameWords(words) {
				return titleCase(line)
			}
		}
		if titleNamePattern.MatchString(line) {
			return line
		}
	}

	return nameFromEmail(email)
}

func allNameWords(words []string) bool {
	for _, w := range words {
		if upperWordPattern.MatchString(w) {
			continue
		}
		if !isAlpha(w) {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

func nameFromEmail(email string) string {
	if email == "" {
		return ""
	}
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	cleaned := nonAlphaPattern.ReplaceAllString(local, " ")
	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// ExtractSocialLinks scans for URLs and bare domain mentions of known
// platforms. Scheme-less matches are normalized with an https:// prefix.
// The result is deduplicated by exact URL and sorted lexicographically so
// repeated runs produce identical output.
func ExtractSocialLinks(text string) []string {
	matches := socialPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		url := strings.Trim(m[1], "—– .")
		if url == "" {
			continue
		}
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		links = append(links, url)
	}
	sort.Strings(links)
	return links
}
