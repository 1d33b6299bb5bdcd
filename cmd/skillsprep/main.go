package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"strings"
	"time"

	"resume-parser/internal/embedding"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/skills"
)

// skillsprep turns a raw skill list, either a JSON array or a job_skills
// SQL dump, into the versioned snapshot the API loads at startup: embed
// every name, drop near-duplicates, partition into hard and soft skills,
// write JSON.
func main() {
	var (
		input   = flag.String("in", "skills/skills.json", "raw skill list (JSON array of {name, type}, or a job_skills SQL dump)")
		output  = flag.String("out", "skills/skill_embeddings.json", "snapshot output path")
		version = flag.String("version", time.Now().UTC().Format("2006-01-02"), "snapshot version tag")
	)
	flag.Parse()

	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required to embed skill names")
	}
	embedder, err := embedding.NewClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingBaseURL)
	if err != nil {
		log.Fatalf("embedding client: %v", err)
	}

	var entries []skills.Skill
	if strings.EqualFold(filepath.Ext(*input), ".sql") {
		entries, err = skills.LoadSkillDump(*input)
	} else {
		entries, err = skills.LoadSkillList(*input)
	}
	if err != nil {
		log.Fatalf("load skills: %v", err)
	}
	log.Printf("loaded %d skills from %s", len(entries), *input)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	tax, err := skills.BuildTaxonomy(ctx, embedder, entries, *version)
	if err != nil {
		log.Fatalf("build taxonomy: %v", err)
	}
	log.Printf("kept %d hard and %d soft skills after dedup", len(tax.Hard), len(tax.Soft))

	if err := skills.SaveTaxonomy(*output, tax); err != nil {
		log.Fatalf("save taxonomy: %v", err)
	}
	log.Printf("wrote snapshot %s (version %s)", *output, tax.Version)
}
