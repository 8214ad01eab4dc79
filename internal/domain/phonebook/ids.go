package phonebook

import (
	"github.com/phonebook/core/internal/domain/entities"
)

// allocateID returns max(id)+1, or 1 for an empty store. Ids are never
// reused after a delete. If the candidate is taken (or wrapped to the
// reserved zero id) random ids are drawn until one is free.
func (s *Store) allocateID() entities.ID {
	candidate := entities.NewID(1)
	if n := len(s.contacts); n > 0 {
		// contacts are sorted, the last one holds the max id
		candidate = s.contacts[n-1].ID.Next()
	}
	for s.isTaken(candidate) {
		candidate = s.randomID()
	}
	return candidate
}

// isTaken checks candidate against every stored id.
func (s *Store) isTaken(candidate entities.ID) bool {
	if candidate.IsZero() {
		return true
	}
	_, found := s.search(candidate)
	return found
}
