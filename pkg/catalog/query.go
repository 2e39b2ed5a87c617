package catalog

import (
	"errors"
	"strings"

	"medimatch/pkg/domain"
)

// ErrEmptySymptoms is returned when the symptom text is empty or blank.
var ErrEmptySymptoms = errors.New("no symptoms provided")

// Recommend returns the catalog entries whose raw description contains
// every comma-separated symptom term (case-insensitive), narrowed by the
// type filter, de-duplicated by name with the first occurrence kept, in
// source order. Matching runs against the full description rather than
// the extracted treats clause.
func (c *Catalog) Recommend(symptoms string, filter domain.TypeFilter) ([]domain.Medicine, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrEmptySymptoms
	}
	terms := splitTerms(symptoms)

	seen := make(map[string]bool)
	matches := []domain.Medicine{}
	for _, med := range c.medicines {
		if !filter.Matches(med.Type) {
			continue
		}
		if !containsAll(strings.ToLower(med.Description), terms) {
			continue
		}
		if seen[med.Name] {
			continue
		}
		seen[med.Name] = true
		matches = append(matches, med)
	}
	return matches, nil
}

func splitTerms(symptoms string) []string {
	parts := strings.Split(symptoms, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

func containsAll(desc string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(desc, term) {
			return false
		}
	}
	return true
}
