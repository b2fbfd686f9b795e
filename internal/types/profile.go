// Package types provides type definitions for structured data used throughout the ats-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// Profile is the master profile every tailored document is derived from
type Profile struct {
	Basics       Basics            `json:"basics" validate:"required"`
	Summaries    Summaries         `json:"summaries"`
	Skills       SkillCollection   `json:"skills"`
	Projects     ProjectCollection `json:"projects"`
	Achievements []Achievement     `json:"achievements" validate:"dive"`
	Work         []Work            `json:"work,omitempty" validate:"dive"`
}

// Basics holds identity and headline fields
type Basics struct {
	Name            string  `json:"name" validate:"required"`
	Label           string  `json:"label,omitempty"`
	Email           string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string  `json:"phone,omitempty"`
	Location        string  `json:"location,omitempty"`
	Website         string  `json:"website,omitempty" validate:"omitempty,url"`
	YearsExperience float64 `json:"years_experience,omitempty" validate:"gte=0"`
	PrimarySkill    string  `json:"primary_skill,omitempty"`
	Domain          string  `json:"domain,omitempty"`
}

// SummaryVariant is one candidate professional summary
type SummaryVariant struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Summaries is an ordered list of summary variants, encoded as a JSON object in declaration order
type Summaries []SummaryVariant

// UnmarshalJSON decodes a JSON object while preserving key order
func (s *Summaries) UnmarshalJSON(data []byte) error {
	out := Summaries{}
	err := forEachOrdered(data, func(key string, raw []byte) error {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
		out = append(out, SummaryVariant{Key: key, Text: text})
		return nil
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalJSON encodes the summaries as a JSON object in declaration order
func (s Summaries) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(s))
	values := make([]any, len(s))
	for i, v := range s {
		keys[i] = v.Key
		values[i] = v.Text
	}
	return marshalOrdered(keys, values)
}

// Get returns the summary with the given key
func (s Summaries) Get(key string) (SummaryVariant, bool) {
	for _, v := range s {
		if v.Key == key {
			return v, true
		}
	}
	return SummaryVariant{}, false
}

// SkillCategory is a named, ordered group of skills
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// SkillCollection is an ordered list of skill categories, encoded as a JSON object in declaration order
type SkillCollection []SkillCategory

// UnmarshalJSON decodes a JSON object while preserving key order
func (c *SkillCollection) UnmarshalJSON(data []byte) error {
	out := SkillCollection{}
	err := forEachOrdered(data, func(key string, raw []byte) error {
		var skills []string
		if err := json.Unmarshal(raw, &skills); err != nil {
			return err
		}
		out = append(out, SkillCategory{Name: key, Skills: skills})
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalJSON encodes the collection as a JSON object in declaration order
func (c SkillCollection) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(c))
	values := make([]any, len(c))
	for i, cat := range c {
		keys[i] = cat.Name
		values[i] = cat.Skills
	}
	return marshalOrdered(keys, values)
}

// Flatten returns every skill in declaration order
func (c SkillCollection) Flatten() []string {
	var all []string
	for _, cat := range c {
		all = append(all, cat.Skills...)
	}
	return all
}

// Project is a portfolio entry
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// ProjectCategory is a named, ordered group of projects
type ProjectCategory struct {
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

// ProjectCollection is an ordered list of project categories, encoded as a JSON object in declaration order
type ProjectCollection []ProjectCategory

// UnmarshalJSON decodes a JSON object while preserving key order
func (c *ProjectCollection) UnmarshalJSON(data []byte) error {
	out := ProjectCollection{}
	err := forEachOrdered(data, func(key string, raw []byte) error {
		var projects []Project
		if err := json.Unmarshal(raw, &projects); err != nil {
			return err
		}
		out = append(out, ProjectCategory{Name: key, Projects: projects})
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalJSON encodes the collection as a JSON object in declaration order
func (c ProjectCollection) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(c))
	values := make([]any, len(c))
	for i, cat := range c {
		keys[i] = cat.Name
		values[i] = cat.Projects
	}
	return marshalOrdered(keys, values)
}

// All returns every project in declaration order
func (c ProjectCollection) All() []Project {
	var all []Project
	for _, cat := range c {
		all = append(all, cat.Projects...)
	}
	return all
}

// Achievement is a responsibility statement with optional metrics
type Achievement struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description" validate:"required"`
	Metrics     Metrics `json:"metrics,omitempty"`
}

// Work is a single position held
type Work struct {
	Company    string   `json:"company" validate:"required"`
	Position   string   `json:"position" validate:"required"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}
