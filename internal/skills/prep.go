package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"resume-parser/internal/embedding"
)

// DedupeThreshold is the cosine similarity above which two skill names
// are considered duplicates during snapshot preparation.
const DedupeThreshold = 0.7

// LoadSkillList reads a raw skill list, a JSON array of {name, type}
// objects, and drops entries with an empty name.
func LoadSkillList(path string) ([]Skill, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load skill list %s: %w", path, err)
	}
	var all []Skill
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("load skill list %s: parse: %w", path, err)
	}
	out := make([]Skill, 0, len(all))
	for _, s := range all {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Dedupe removes near-duplicate skills. The first occurrence in input
// order wins; any later skill whose embedding is within threshold of a
// kept skill is dropped. vectors must be parallel to entries.
func Dedupe(entries []Skill, vectors [][]float64, threshold float64) ([]Skill, [][]float64) {
	kept := make([]Skill, 0, len(entries))
	keptVecs := make([][]float64, 0, len(entries))
	for i, entry := range entries {
		dup := false
		for _, v := range keptVecs {
			if embedding.Cosine(vectors[i], v) >= threshold {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		kept = append(kept, entry)
		keptVecs = append(keptVecs, vectors[i])
	}
	return kept, keptVecs
}

// BuildTaxonomy embeds skill names, deduplicates them, and partitions
// the survivors into hard and soft lists with parallel vector tables.
// Type matching is prefix-based, so "hard", "Hard Skill" and
// "hard_skill" all land in the hard partition.
func BuildTaxonomy(ctx context.Context, embedder embedding.TextEmbedder, entries []Skill, version string) (*Taxonomy, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("build taxonomy: no skills")
	}
	names := make([]string, len(entries))
	for i, s := range entries {
		names[i] = s.Name
	}
	vectors, err := embedder.Embed(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("build taxonomy: embed: %w", err)
	}
	if len(vectors) != len(entries) {
		return nil, fmt.Errorf("build taxonomy: embedder returned %d vectors for %d names", len(vectors), len(entries))
	}

	entries, vectors = Dedupe(entries, vectors, DedupeThreshold)

	tax := &Taxonomy{Version: version}
	for i, entry := range entries {
		switch {
		case strings.HasPrefix(strings.ToLower(entry.Type), "hard"):
			tax.Hard = append(tax.Hard, entry)
			tax.HardVectors = append(tax.HardVectors, vectors[i])
		case strings.HasPrefix(strings.ToLower(entry.Type), "soft"):
			tax.Soft = append(tax.Soft, entry)
			tax.SoftVectors = append(tax.SoftVectors, vectors[i])
		}
	}
	if err := tax.validate(); err != nil {
		return nil, fmt.Errorf("build taxonomy: %w", err)
	}
	return tax, nil
}

// SaveTaxonomy writes the snapshot to path as indented JSON.
func SaveTaxonomy(path string, tax *Taxonomy) error {
	data, err := json.MarshalIndent(tax, "", "  ")
	if err != nil {
		return fmt.Errorf("save taxonomy: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save taxonomy %s: %w", path, err)
	}
	return nil
}

var (
	insertValuesPattern = regexp.MustCompile("(?s)INSERT INTO `?job_skills`?.*?VALUES\\s*(.+);")
	tuplePattern        = regexp.MustCompile(`(?s)\((.*?)\)`)
	tupleValuePattern   = regexp.MustCompile(`'(.*?)'|(\bNULL\b|\d+)`)
)

// LoadSkillDump recovers a raw skill list from a job_skills bulk-INSERT SQL
// dump. Each row tuple is (id, name, type, ...); names are deduplicated
// case-insensitively with the first occurrence winning.
func LoadSkillDump(path string) ([]Skill, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load skill dump %s: %w", path, err)
	}
	m := insertValuesPattern.FindSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("load skill dump %s: no job_skills INSERT found", path)
	}

	seen := make(map[string]bool)
	var out []Skill
	for _, tuple := range tuplePattern.FindAllSubmatch(m[1], -1) {
		var values []string
		for _, v := range tupleValuePattern.FindAllSubmatch(tuple[1], -1) {
			s := string(v[1])
			if s == "" {
				s = string(v[2])
			}
			if s == "NULL" {
				s = ""
			}
			values = append(values, s)
		}
		if len(values) < 3 {
			continue
		}
		name := strings.TrimSpace(values[1])
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Skill{Name: name, Type: strings.ToLower(strings.TrimSpace(values[2]))})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("load skill dump %s: no skills parsed", path)
	}
	return out, nil
}
