// Package search matches people against a query.
package search

import (
	"strings"

	"peoplepick/internal/dataset"
	"peoplepick/internal/domain"
)

// normalize folds case and trims surrounding whitespace
func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// Matches reports whether the person's name contains the query,
// ignoring case and surrounding whitespace on both sides
func Matches(p domain.Person, query string) bool {
	return strings.Contains(normalize(p.Name), normalize(query))
}

// Filter returns the people whose name contains query, in their original
// order. An empty query matches everyone.
func Filter(people []domain.Person, query string) []domain.Person {
	q := normalize(query)
	result := make([]domain.Person, 0, len(people))
	for _, p := range people {
		if strings.Contains(normalize(p.Name), q) {
			result = append(result, p)
		}
	}
	return result
}

// Memo caches Filter results keyed on the query and the dataset version
type Memo struct {
	query   string
	version uint64
	valid   bool
	result  []domain.Person

	computations int
}

// Get returns the filtered people for query, recomputing only when the
// query or the dataset version differs from the previous call
func (m *Memo) Get(query string, ds dataset.Dataset) []domain.Person {
	version := ds.Version()
	if m.valid && m.query == query && m.version == version {
		return m.result
	}

	m.result = Filter(ds.People(), query)
	m.query = query
	m.version = version
	m.valid = true
	m.computations++
	return m.result
}

// Computations is how many times Get actually ran the filter
func (m *Memo) Computations() int {
	return m.computations
}
