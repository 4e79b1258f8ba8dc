package services

// Services defined in this package:
// - StudentService: CRUD and search over the student collection
// - SubjectService: CRUD and search over the subject collection
// - GradeService: CRUD, search and letter-grade derivation over grades
// - StatsService: derived statistics over the live collections
// - AnalysisService: external natural-language performance summaries

import "strings"

// matchesTerm reports whether the free-text term matches any of the fields,
// case-insensitively. An empty term matches everything.
func matchesTerm(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
