// Package phonebook holds the in-memory contact collection and its invariants:
// contacts are kept sorted by id, ids are allocated by the store, and Add
// refuses a name whose key is already present.
//
// Store is not safe for concurrent use; wrap it in the repository guard.
package phonebook

import (
	"fmt"
	"slices"

	"github.com/phonebook/core/internal/domain/entities"
)

// Store is an ordered collection of contacts, unique by id.
type Store struct {
	contacts []entities.Contact

	// randomID is swapped in tests to force collisions.
	randomID func() entities.ID
}

// New returns an empty store.
func New() *Store {
	return &Store{randomID: entities.RandomID}
}

// FromContacts builds a store from an untrusted list, e.g. a decoded file.
// The list is copied and sorted. It fails if a contact has the reserved zero
// id or if two contacts share an id. Name keys are not checked: Update may
// legitimately have produced colliding names.
func FromContacts(contacts []entities.Contact) (*Store, error) {
	s := New()
	s.contacts = slices.Clone(contacts)
	s.Sort()

	for i, c := range s.contacts {
		if c.ID.IsZero() {
			return nil, fmt.Errorf("contact %q has reserved id 0", c.Name)
		}
		if i > 0 && s.contacts[i-1].ID == c.ID {
			return nil, fmt.Errorf("duplicate id %s", c.ID)
		}
	}
	return s, nil
}

// Add inserts c and returns the id assigned to it. The caller must leave
// c.ID at zero.
func (s *Store) Add(c entities.Contact) (entities.ID, error) {
	if !c.ID.IsZero() {
		return entities.ID{}, fmt.Errorf("%w: got %s", entities.ErrInvalidID, c.ID)
	}
	key, ok := newNameKey(c.Name)
	if !ok {
		return entities.ID{}, entities.ErrInvalidName
	}
	if s.indexOfNameKey(key) >= 0 {
		return entities.ID{}, fmt.Errorf("%w: %q", entities.ErrDuplicateName, c.Name)
	}

	c.ID = s.allocateID()
	s.contacts = append(s.contacts, c)
	s.Sort()
	return c.ID, nil
}

// GetByID looks up a contact by binary search.
func (s *Store) GetByID(id entities.ID) (entities.Contact, bool) {
	i, found := s.search(id)
	if !found {
		return entities.Contact{}, false
	}
	return s.contacts[i], true
}

// GetByName returns the contact whose name key matches name.
func (s *Store) GetByName(name string) (entities.Contact, bool) {
	key, ok := newNameKey(name)
	if !ok {
		return entities.Contact{}, false
	}
	i := s.indexOfNameKey(key)
	if i < 0 {
		return entities.Contact{}, false
	}
	return s.contacts[i], true
}

// Update overwrites the non-empty fields of patch onto the contact with the
// given id. Ids are immutable. The new name is not checked against the other
// contacts' name keys.
func (s *Store) Update(id entities.ID, patch entities.ContactPatch) error {
	i, found := s.search(id)
	if !found {
		return fmt.Errorf("%w: id %s", entities.ErrNotFound, id)
	}
	if patch.Name != "" {
		s.contacts[i].Name = patch.Name
	}
	if patch.Number != "" {
		s.contacts[i].Number = patch.Number
	}
	s.Sort()
	return nil
}

// Delete removes the contact with the given id and reports whether one was
// present. Deleting an unknown id is a no-op.
func (s *Store) Delete(id entities.ID) bool {
	i, found := s.search(id)
	if !found {
		return false
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	s.Sort()
	return true
}

// Sort orders the contacts ascending by id.
func (s *Store) Sort() {
	slices.SortFunc(s.contacts, func(a, b entities.Contact) int {
		return a.ID.Cmp(b.ID)
	})
}

// Snapshot returns a detached copy of the contacts in id order.
func (s *Store) Snapshot() []entities.Contact {
	out := make([]entities.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Len returns the number of contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

func (s *Store) search(id entities.ID) (int, bool) {
	return slices.BinarySearchFunc(s.contacts, id, func(c entities.Contact, target entities.ID) int {
		return c.ID.Cmp(target)
	})
}
