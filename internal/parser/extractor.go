package parser

import (
	"context"
	"errors"
	"runtime/debug"
	"strings"

	"resume-parser/internal/shared/telemetry"
	"resume-parser/internal/skills"
)

// ErrNoText is returned when the input contains nothing to extract. It is
// the only fatal condition in the pipeline; every other fault degrades a
// single field.
var ErrNoText = errors.New("no extractable text")

// SemanticScope selects the text handed to the semantic skill strategy.
type SemanticScope string

const (
	// ScopeDocument embeds the whole document.
	ScopeDocument SemanticScope = "document"
	// ScopeSkills embeds only the skills section, falling back to the whole
	// document when the resume has no recognizable skills heading.
	ScopeSkills SemanticScope = "skills"
)

// Extractor assembles a Record from raw resume text. The matcher is
// injected so tests can run with fake taxonomies; a nil matcher skips skill
// extraction entirely.
type Extractor struct {
	matcher *skills.Matcher
	scope   SemanticScope
}

// NewExtractor builds the pipeline entry point.
func NewExtractor(matcher *skills.Matcher, scope SemanticScope) *Extractor {
	if scope != ScopeSkills {
		scope = ScopeDocument
	}
	return &Extractor{matcher: matcher, scope: scope}
}

// Extract partitions the document once, runs every field extractor and
// sub-parser against it and assembles the result. A panic inside one
// field's logic resolves
// that field to absent and is logged; it never aborts the record. The
// pipeline is a pure function of its input: identical text yields
// byte-identical output.
func (e *Extractor) Extract(ctx context.Context, text string) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, ErrNoText
	}

	sections := Partition(Lines(text))
	rec := emptyRecord()

	var email string
	recoverField("email", func() {
		email = ExtractEmail(text)
		rec.Email = optional(email)
	})
	recoverField("phone", func() {
		rec.Phone = optional(ExtractPhone(text))
	})
	recoverField("name", func() {
		rec.Name = optional(ExtractName(text, email))
	})
	recoverField("summary", func() {
		rec.Summary = optional(ExtractSummary(sections[SectionSummary]))
	})
	recoverField("social_links", func() {
		if links := ExtractSocialLinks(text); len(links) > 0 {
			rec.SocialLinks = links
		}
	})
	recoverField("experience", func() {
		if entries := ExtractExperience(sections[SectionExperience]); len(entries) > 0 {
			rec.Experience = entries
		}
	})
	recoverField("education", func() {
		if entries := ExtractEducation(sections[SectionEducation]); len(entries) > 0 {
			rec.Education = entries
		}
	})
	recoverField("projects", func() {
		if projects := ExtractProjects(sections[SectionProjects]); len(projects) > 0 {
			rec.Projects = projects
		}
	})

	if e.matcher != nil {
		recoverField("skills", func() {
			hard, soft := e.matcher.Match(ctx, e.semanticText(text, sections))
			if len(hard) > 0 {
				rec.HardSkills = hard
			}
			if len(soft) > 0 {
				rec.SoftSkills = soft
			}
		})
	}

	return rec, nil
}

func (e *Extractor) semanticText(text string, sections map[SectionLabel]Section) string {
	if e.scope != ScopeSkills {
		return text
	}
	if sec, ok := sections[SectionSkills]; ok {
		return strings.Join(sec.Lines, "\n")
	}
	return text
}

// recoverField isolates one field's logic so a heuristic blowing up on a
// hostile layout costs that field, not the request.
func recoverField(field string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("parser.field.recovered", map[string]any{
				"field": field,
				"error": rec,
				"stack": string(debug.Stack()),
			})
		}
	}()
	fn()
}
