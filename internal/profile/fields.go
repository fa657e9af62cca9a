// Package profile collects and validates the fixed candidate profile
// that precedes the technical screening.
package profile

import "strings"

// Field identifies one entry in the fixed profile questionnaire.
type Field string

const (
	FieldFullName         Field = "full_name"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldYearsExperience  Field = "years_experience"
	FieldDesiredPositions Field = "desired_positions"
	FieldCurrentLocation  Field = "current_location"
	FieldTechStack        Field = "tech_stack"
)

// RequiredFields is the collection order. The terminal field (tech_stack)
// hands the session off to classification.
var RequiredFields = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldYearsExperience,
	FieldDesiredPositions,
	FieldCurrentLocation,
	FieldTechStack,
}

var fieldLabels = map[Field]string{
	FieldFullName:         "Full name",
	FieldEmail:            "Email address",
	FieldPhone:            "Phone number",
	FieldYearsExperience:  "Years of professional experience",
	FieldDesiredPositions: "Desired role(s) or job title(s)",
	FieldCurrentLocation:  "Current location (city, country)",
	FieldTechStack:        "Tech stack (technologies, tools, frameworks)",
}

// Label returns the human-readable prompt label for a field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Profile is the completed candidate profile. Values are normalized at
// collection time and never mutated once screening starts.
type Profile struct {
	FullName         string
	Email            string
	Phone            string
	YearsExperience  int
	DesiredPositions string
	CurrentLocation  string
	TechStack        string
}

// FirstName returns the first whitespace-separated token of the full
// name, or "" when the name is empty.
func (p Profile) FirstName() string {
	parts := strings.Fields(p.FullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// Seniority labels derived from years of experience.
const (
	SeniorityJunior = "Junior"
	SeniorityMid    = "Mid-level"
	SenioritySenior = "Senior"
)

// Seniority maps years of experience to a label using fixed thresholds.
func Seniority(years int) string {
	switch {
	case years < 2:
		return SeniorityJunior
	case years < 6:
		return SeniorityMid
	default:
		return SenioritySenior
	}
}
