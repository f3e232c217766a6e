package domain

import (
	"fmt"
	"strings"
)

// UserProfile carries optional caller-supplied personalisation data.
// The core reads it when building prompts and never mutates it.
type UserProfile struct {
	Age                 int
	Gender              string
	ActivityLevel       string
	Goals               string
	DietaryRestrictions []string
	Preferences         []string
}

// IsZero returns true if no profile field is populated.
func (p *UserProfile) IsZero() bool {
	return p == nil || (p.Age == 0 && p.Gender == "" && p.ActivityLevel == "" &&
		p.Goals == "" && len(p.DietaryRestrictions) == 0 && len(p.Preferences) == 0)
}

// Describe renders the profile as a single prompt line,
// e.g. "Age: 25 | Gender: male | Goals: muscle building".
func (p *UserProfile) Describe() string {
	if p.IsZero() {
		return ""
	}
	var parts []string
	if p.Age > 0 {
		parts = append(parts, fmt.Sprintf("Age: %d", p.Age))
	}
	if p.Gender != "" {
		parts = append(parts, "Gender: "+p.Gender)
	}
	if p.ActivityLevel != "" {
		parts = append(parts, "Activity Level: "+p.ActivityLevel)
	}
	if p.Goals != "" {
		parts = append(parts, "Goals: "+p.Goals)
	}
	if len(p.DietaryRestrictions) > 0 {
		parts = append(parts, "Dietary Restrictions: "+strings.Join(p.DietaryRestrictions, ", "))
	}
	if len(p.Preferences) > 0 {
		parts = append(parts, "Food Preferences: "+strings.Join(p.Preferences, ", "))
	}
	return strings.Join(parts, " | ")
}
