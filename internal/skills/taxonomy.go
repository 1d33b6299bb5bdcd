package skills

import (
	"encoding/json"
	"fmt"
	"os"
)

// Skill is one canonical taxonomy entry.
type Skill struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Taxonomy is the canonical skill dictionary partitioned into hard and soft
// lists, with one precomputed embedding vector per name. It is loaded once
// at process start and never mutated, so unlimited concurrent readers are
// safe.
type Taxonomy struct {
	Version     string      `json:"version"`
	Hard        []Skill     `json:"hard_skills"`
	Soft        []Skill     `json:"soft_skills"`
	HardVectors [][]float64 `json:"hard_embeddings"`
	SoftVectors [][]float64 `json:"soft_embeddings"`
}

// LoadTaxonomy reads a versioned snapshot produced by cmd/skillsprep.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %s: %w", path, err)
	}
	var tax Taxonomy
	if err := json.Unmarshal(raw, &tax); err != nil {
		return nil, fmt.Errorf("load taxonomy %s: parse: %w", path, err)
	}
	if err := tax.validate(); err != nil {
		return nil, fmt.Errorf("load taxonomy %s: %w", path, err)
	}
	return &tax, nil
}

func (t *Taxonomy) validate() error {
	if len(t.Hard) == 0 && len(t.Soft) == 0 {
		return fmt.Errorf("taxonomy has no skills")
	}
	if len(t.HardVectors) > 0 && len(t.HardVectors) != len(t.Hard) {
		return fmt.Errorf("hard embeddings count %d does not match %d skills", len(t.HardVectors), len(t.Hard))
	}
	if len(t.SoftVectors) > 0 && len(t.SoftVectors) != len(t.Soft) {
		return fmt.Errorf("soft embeddings count %d does not match %d skills", len(t.SoftVectors), len(t.Soft))
	}
	return nil
}
