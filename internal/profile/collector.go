package profile

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	numberPattern = regexp.MustCompile(`(\d+(\.\d+)?)`)
	nonDigit      = regexp.MustCompile(`\D`)
)

// Outcome reports the result of submitting one user turn to the Collector.
type Outcome struct {
	// Accepted is true when the input validated and the cursor advanced.
	Accepted bool

	// Corrective is the re-prompt emitted on validation failure.
	Corrective string

	// Ack is an optional acknowledgment emitted on acceptance
	// (e.g. the seniority note after years of experience).
	Ack string

	// Done is true once the terminal field has been accepted.
	Done bool
}

// Collector walks the fixed field list, validating one field per turn.
// A failed validation re-asks the same field; the cursor only moves on
// accepted input.
type Collector struct {
	idx     int
	profile Profile
	done    bool
}

// NewCollector returns a collector positioned at the first field.
func NewCollector() *Collector {
	return &Collector{}
}

// Current returns the field awaiting input.
func (c *Collector) Current() Field {
	return RequiredFields[c.idx]
}

// Prompt returns the question for the current field.
func (c *Collector) Prompt() string {
	return "Please provide your " + c.Current().Label() + "."
}

// Done reports whether all fields have been accepted.
func (c *Collector) Done() bool {
	return c.done
}

// Accepted reports whether the given field has been collected yet.
func (c *Collector) Accepted(f Field) bool {
	if c.done {
		return true
	}
	for i, rf := range RequiredFields {
		if rf == f {
			return i < c.idx
		}
	}
	return false
}

// Profile returns the collected profile. Only meaningful once Done.
func (c *Collector) Profile() Profile {
	return c.profile
}

// Submit validates raw input against the current field's rule. On success
// the normalized value is stored and the cursor advances; on failure the
// cursor stays put and Outcome.Corrective carries the re-prompt.
func (c *Collector) Submit(raw string) Outcome {
	value := StripLabelPrefix(raw)

	switch c.Current() {
	case FieldFullName:
		c.profile.FullName = value
		name := value
		if name == "" {
			name = "there"
		}
		return c.accept(Outcome{Ack: "Nice to meet you, " + name + "."})

	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return Outcome{Corrective: "That doesn't look like a valid email. " +
				"Please enter something like name@example.com."}
		}
		c.profile.Email = value
		return c.accept(Outcome{})

	case FieldPhone:
		normalized := NormalizePhone(raw)
		if !validPhone(normalized) {
			return Outcome{Corrective: "That doesn't look like a valid phone number. " +
				"Please enter 8-15 digits (you can start with + for country code)."}
		}
		c.profile.Phone = normalized
		return c.accept(Outcome{})

	case FieldYearsExperience:
		years, ok := ParseYears(raw)
		if !ok {
			return Outcome{Corrective: "Could you enter your experience roughly as a number? " +
				"For example: 1, 2.5 years, or 3 yrs."}
		}
		c.profile.YearsExperience = years
		return c.accept(Outcome{
			Ack: "Got it - I'll treat you as " + Seniority(years) + " based on your experience.",
		})

	case FieldDesiredPositions:
		c.profile.DesiredPositions = value
		return c.accept(Outcome{})

	case FieldCurrentLocation:
		c.profile.CurrentLocation = value
		return c.accept(Outcome{})

	case FieldTechStack:
		if len(strings.Fields(value)) == 0 {
			return Outcome{Corrective: "I couldn't detect any technologies. " +
				"Please enter at least one, e.g. Python, Django."}
		}
		c.profile.TechStack = value
		c.done = true
		return Outcome{Accepted: true, Done: true}
	}

	return Outcome{}
}

func (c *Collector) accept(out Outcome) Outcome {
	out.Accepted = true
	if c.idx < len(RequiredFields)-1 {
		c.idx++
	}
	return out
}

// StripLabelPrefix drops a leading "Label:" prefix candidates often type
// ("Email: me@example.com" → "me@example.com").
func StripLabelPrefix(text string) string {
	if i := strings.Index(text, ":"); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	return strings.TrimSpace(text)
}

// NormalizePhone strips spaces and dashes and any non-digits, preserving
// a single leading + when present.
func NormalizePhone(text string) string {
	text = StripLabelPrefix(text)
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, "-", "")
	if strings.HasPrefix(text, "+") {
		return "+" + nonDigit.ReplaceAllString(text[1:], "")
	}
	return nonDigit.ReplaceAllString(text, "")
}

func validPhone(normalized string) bool {
	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < 8 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseYears extracts the first number in the input, clamps it to [0,40],
// and rounds to the nearest whole year.
func ParseYears(raw string) (int, bool) {
	text := strings.ToLower(StripLabelPrefix(raw))
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	value = math.Max(0, math.Min(40, value))
	return int(math.Round(value)), true
}
