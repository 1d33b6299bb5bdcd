package skills

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"resume-parser/internal/embedding"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/telemetry"
)

// SkillRecord is one recognized skill. Score is 1.0 for keyword matches and
// the cosine similarity for semantic matches. The identity key of a record
// is its lowercase-trimmed name.
type SkillRecord struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

const (
	SourceKeyword  = "keyword"
	SourceSemantic = "semantic"
)

// Options tunes the semantic strategy. Observed useful thresholds sit
// between 0.45 and 0.65 depending on the embedding model.
type Options struct {
	Threshold float64
	TopK      int
}

// DefaultOptions mirror the tuning the taxonomy snapshots were built
// against.
func DefaultOptions() Options {
	return Options{Threshold: 0.45, TopK: 15}
}

// Matcher reconciles exact keyword lookups with embedding-similarity search
// over a fixed taxonomy. It is immutable after construction and safe for
// concurrent use.
type Matcher struct {
	tax      *Taxonomy
	embedder embedding.TextEmbedder
	opts     Options
}

// NewMatcher builds a matcher. embedder may be nil, in which case every
// match is keyword-only.
func NewMatcher(tax *Taxonomy, embedder embedding.TextEmbedder, opts Options) *Matcher {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultOptions().Threshold
	}
	if opts.TopK <= 0 {
		opts.TopK = DefaultOptions().TopK
	}
	return &Matcher{tax: tax, embedder: embedder, opts: opts}
}

// Match runs both strategies over text and returns the merged hard and soft
// skill lists. An embedder failure degrades to keyword-only results; it is
// logged, never fatal.
func (m *Matcher) Match(ctx context.Context, text string) (hard, soft []SkillRecord) {
	keywordHard := MatchKeywords(text, m.tax.Hard)
	keywordSoft := MatchKeywords(text, m.tax.Soft)

	var semanticHard, semanticSoft []SkillRecord
	if m.embedder != nil {
		vec, err := m.embedText(ctx, text)
		if err != nil {
			metrics.IncSemanticDegraded()
			telemetry.Warn("skills.semantic.degraded", map[string]any{
				"err":     err.Error(),
				"matched": "keyword-only",
			})
		} else {
			semanticHard = m.matchSemantic(vec, m.tax.Hard, m.tax.HardVectors)
			semanticSoft = m.matchSemantic(vec, m.tax.Soft, m.tax.SoftVectors)
		}
	}

	return Merge(keywordHard, semanticHard), Merge(keywordSoft, semanticSoft)
}

func (m *Matcher) embedText(ctx context.Context, text string) ([]float64, error) {
	vectors, err := m.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for one input", len(vectors))
	}
	return vectors[0], nil
}

// MatchKeywords tests every canonical name as a case-insensitive substring
// of the document. Quadratic in the obvious way, but both sides are bounded
// and this runs once per request. Matches keep taxonomy order and score 1.0.
func MatchKeywords(text string, list []Skill) []SkillRecord {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{}, len(list))
	var found []SkillRecord
	for _, skill := range list {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		if !strings.Contains(lower, key) {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, SkillRecord{
			Name:   name,
			Type:   skill.Type,
			Score:  1.0,
			Source: SourceKeyword,
		})
	}
	return found
}

// matchSemantic ranks taxonomy entries by cosine similarity to the document
// vector, keeps those above the threshold and caps the list at TopK. The
// sort is stable so ties keep taxonomy order.
func (m *Matcher) matchSemantic(docVec []float64, list []Skill, vectors [][]float64) []SkillRecord {
	if len(vectors) == 0 {
		return nil
	}
	type scored struct {
		idx   int
		score float64
	}
	candidates := make([]scored, 0, len(list))
	for i := range list {
		if i >= len(vectors) {
			break
		}
		score := embedding.Cosine(docVec, vectors[i])
		if score > m.opts.Threshold {
			candidates = append(candidates, scored{idx: i, score: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > m.opts.TopK {
		candidates = candidates[:m.opts.TopK]
	}

	seen := make(map[string]struct{}, len(candidates))
	var found []SkillRecord
	for _, c := range candidates {
		skill := list[c.idx]
		key := strings.ToLower(strings.TrimSpace(skill.Name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, SkillRecord{
			Name:   strings.TrimSpace(skill.Name),
			Type:   skill.Type,
			Score:  c.score,
			Source: SourceSemantic,
		})
	}
	return found
}

// Merge deduplicates keyword and semantic results into one list keyed by
// lowercase-trimmed name. Keyword entries are iterated first, so exact
// keyword evidence always wins over an embedding-similarity duplicate.
// Output order: keyword matches in taxonomy order, then remaining semantic
// matches in descending-similarity order. Merging a list with itself is a
// no-op.
func Merge(keyword, semantic []SkillRecord) []SkillRecord {
	merged := make([]SkillRecord, 0, len(keyword)+len(semantic))
	seen := make(map[string]struct{}, len(keyword)+len(semantic))
	for _, rec := range append(append([]SkillRecord{}, keyword...), semantic...) {
		key := strings.ToLower(strings.TrimSpace(rec.Name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, rec)
	}
	return merged
}
