package skills

import (
	"strings"
)

const fallbackHeadlineSkill = "Security Professional"

// Headline builds "Title | Skill1 & Skill2 | Specialization".
// Only the first two skills are used; with none, a generic label stands in.
func Headline(title string, topSkills []string, specialization string) string {
	var skillsPart string
	switch {
	case len(topSkills) >= 2:
		skillsPart = topSkills[0] + " & " + topSkills[1]
	case len(topSkills) == 1:
		skillsPart = topSkills[0]
	default:
		skillsPart = fallbackHeadlineSkill
	}

	parts := []string{strings.TrimSpace(title), skillsPart}
	if s := strings.TrimSpace(specialization); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " | ")
}
