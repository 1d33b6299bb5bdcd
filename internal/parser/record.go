package parser

import "resume-parser/internal/skills"

// Record is the assembled extraction result. The JSON schema is fixed:
// absent scalar fields serialize as null, absent sequences as empty arrays,
// and no key is ever omitted, so downstream consumers can rely on the shape.
type Record struct {
	Name        *string              `json:"name"`
	Email       *string              `json:"email"`
	Phone       *string              `json:"phone"`
	Summary     *string              `json:"summary"`
	SocialLinks []string             `json:"social_links"`
	Education   []EducationEntry     `json:"education"`
	Experience  []ExperienceEntry    `json:"experience"`
	Projects    []string             `json:"projects"`
	HardSkills  []skills.SkillRecord `json:"hard_skills"`
	SoftSkills  []skills.SkillRecord `json:"soft_skills"`
}

// optional maps the empty string to JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyRecord() Record {
	return Record{
		SocialLinks: []string{},
		Education:   []EducationEntry{},
		Experience:  []ExperienceEntry{},
		Projects:    []string{},
		HardSkills:  []skills.SkillRecord{},
		SoftSkills:  []skills.SkillRecord{},
	}
}
