package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ats-tailor/internal/types"
)

var profileValidator = validator.New()

// LoadProfile loads a master profile from a JSON file, validates it and normalizes it
func LoadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseProfile(content)
}

// ParseProfile decodes, validates and normalizes profile JSON
func ParseProfile(data []byte) (*types.Profile, error) {
	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := profileValidator.Struct(&p); err != nil {
		return nil, &NormalizationError{
			Message: "invalid profile",
			Cause:   err,
		}
	}

	if err := Normalize(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Normalize applies all normalization steps to a profile
func Normalize(p *types.Profile) error {
	NormalizeSkills(p)
	AssignAchievementIDs(p)
	return ValidateIDs(p)
}

// NormalizeSkills trims skill names and drops empty and case-insensitive duplicate entries
// within each category. Category and skill order are kept.
func NormalizeSkills(p *types.Profile) {
	for i := range p.Skills {
		cat := &p.Skills[i]
		normalized := make([]string, 0, len(cat.Skills))
		seen := make(map[string]struct{})

		for _, skill := range cat.Skills {
			skill = strings.Join(strings.Fields(skill), " ")
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			normalized = append(normalized, skill)
		}

		cat.Skills = normalized
	}
}

// AssignAchievementIDs gives every achievement without an ID a positional one
func AssignAchievementIDs(p *types.Profile) {
	for i := range p.Achievements {
		if strings.TrimSpace(p.Achievements[i].ID) == "" {
			p.Achievements[i].ID = fmt.Sprintf("achievement_%03d", i+1)
		}
	}
}

// ValidateIDs checks that project and achievement IDs are unique
func ValidateIDs(p *types.Profile) error {
	projects := make(map[string]bool)
	for _, proj := range p.Projects.All() {
		if proj.ID == "" {
			return &NormalizationError{Message: fmt.Sprintf("project %q has no id", proj.Name)}
		}
		if projects[proj.ID] {
			return &NormalizationError{Message: fmt.Sprintf("duplicate project id '%s'", proj.ID)}
		}
		projects[proj.ID] = true
	}

	achievements := make(map[string]bool)
	for _, a := range p.Achievements {
		if achievements[a.ID] {
			return &NormalizationError{Message: fmt.Sprintf("duplicate achievement id '%s'", a.ID)}
		}
		achievements[a.ID] = true
	}
	return nil
}
