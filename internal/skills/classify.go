// Package skills classifies a candidate's free-form tech stack into a
// fixed set of skill categories using a static lookup table.
package skills

import "strings"

// EmptyStackPlaceholder is the synthetic skill used when the candidate's
// stack yields no tokens, so the scheduler always has one category.
const EmptyStackPlaceholder = "(no technologies provided)"

// CategoryMap maps a category name to the skills assigned to it,
// in first-seen order.
type CategoryMap map[string][]string

// ParseStack tokenizes a raw tech stack string. Splits on commas and
// semicolons, falling back to whitespace when neither is present.
// Tokens are trimmed, empties dropped, and duplicates removed
// case-insensitively while keeping the first occurrence's casing.
func ParseStack(raw string) []string {
	text := strings.ReplaceAll(raw, ";", ",")

	var parts []string
	if strings.Contains(text, ",") {
		parts = strings.Split(text, ",")
	} else {
		parts = strings.Fields(text)
	}

	seen := make(map[string]bool)
	var unique []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		low := strings.ToLower(p)
		if seen[low] {
			continue
		}
		seen[low] = true
		unique = append(unique, p)
	}
	return unique
}

// Categorize assigns each token to its category via the static table.
// Unknown tokens land in CategoryOther. Skills are deduplicated
// case-insensitively within each category.
func Categorize(tokens []string) CategoryMap {
	categories := make(CategoryMap)
	seen := make(map[string]map[string]bool)

	for _, tok := range tokens {
		label := strings.TrimSpace(tok)
		if label == "" {
			continue
		}
		cat, ok := categoryByToken[strings.ToLower(label)]
		if !ok {
			cat = CategoryOther
		}
		if seen[cat] == nil {
			seen[cat] = make(map[string]bool)
		}
		low := strings.ToLower(label)
		if seen[cat][low] {
			continue
		}
		seen[cat][low] = true
		categories[cat] = append(categories[cat], label)
	}

	return categories
}

// CategorizeStack parses and categorizes a raw stack string. It never
// returns an empty map: an input with no usable tokens yields a single
// Other category holding EmptyStackPlaceholder.
func CategorizeStack(raw string) CategoryMap {
	categories := Categorize(ParseStack(raw))
	if len(categories) == 0 {
		categories = CategoryMap{CategoryOther: {EmptyStackPlaceholder}}
	}
	return categories
}

// CategoryOrder returns the session rotation order for the categories
// present in m: the fixed priority order first, then any categories the
// priority list doesn't know about.
func CategoryOrder(m CategoryMap) []string {
	var ordered []string
	listed := make(map[string]bool)
	for _, c := range categoryPriority {
		listed[c] = true
		if _, present := m[c]; present {
			ordered = append(ordered, c)
		}
	}
	for c := range m {
		if !listed[c] {
			ordered = append(ordered, c)
		}
	}
	return ordered
}
