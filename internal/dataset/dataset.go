// Package dataset holds the read-only people collection searched by the
// selector, along with loaders for people files and a file watcher that
// swaps in new snapshots.
package dataset

import (
	_ "embed"
	"sync"

	"peoplepick/internal/domain"
)

// Dataset is an ordered, read-only collection of people. The slice returned
// by People must not be modified by callers. Version changes whenever the
// contents change.
type Dataset interface {
	People() []domain.Person
	Version() uint64
}

// Static is a dataset fixed at construction time
type Static struct {
	people []domain.Person
}

// NewStatic creates a static dataset holding a copy of people
func NewStatic(people []domain.Person) *Static {
	cp := make([]domain.Person, len(people))
	copy(cp, people)
	return &Static{people: cp}
}

func (s *Static) People() []domain.Person { return s.people }

func (s *Static) Version() uint64 { return 1 }

// Store is a dataset whose snapshot can be replaced while readers are active
type Store struct {
	mu      sync.RWMutex
	people  []domain.Person
	version uint64
}

// NewStore creates a store seeded with people at version 1
func NewStore(people []domain.Person) *Store {
	s := &Store{}
	s.Replace(people)
	return s
}

func (s *Store) People() []domain.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.people
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace swaps in a copy of people and returns the new version.
// Snapshots handed out earlier are never mutated.
func (s *Store) Replace(people []domain.Person) uint64 {
	cp := make([]domain.Person, len(people))
	copy(cp, people)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = cp
	s.version++
	return s.version
}

//go:embed people.json
var defaultPeople []byte

// Default returns the built-in people list
func Default() (*Static, error) {
	people, err := Decode(defaultPeople, FormatJSON)
	if err != nil {
		return nil, err
	}
	return NewStatic(people), nil
}
