package repository

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/phonebook/core/internal/domain/entities"
	"github.com/phonebook/core/internal/domain/phonebook"
	"github.com/phonebook/core/internal/ports"
)

// ContactRepositoryImpl guards a single phonebook.Store with a reader/writer
// lock. Reads run concurrently; mutations are exclusive and cover only the
// in-memory change. Nothing here touches the disk.
type ContactRepositoryImpl struct {
	mu      sync.RWMutex
	store   *phonebook.Store
	version uint64

	// poisoned is set when a panic escapes a write section. The store may
	// be half-mutated at that point, so every later call is refused.
	poisoned atomic.Bool
}

// NewContactRepository creates a new contact repository around store
func NewContactRepository(store *phonebook.Store) ports.ContactRepository {
	if store == nil {
		store = phonebook.New()
	}
	return &ContactRepositoryImpl{store: store}
}

func (r *ContactRepositoryImpl) Create(contact entities.Contact) (entities.Contact, error) {
	err := r.write(func(s *phonebook.Store) (bool, error) {
		id, err := s.Add(contact)
		if err != nil {
			return false, err
		}
		contact.ID = id
		return true, nil
	})
	if err != nil {
		return entities.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (r *ContactRepositoryImpl) GetByID(id entities.ID) (contact entities.Contact, found bool, err error) {
	err = r.read(func(s *phonebook.Store) {
		contact, found = s.GetByID(id)
	})
	return contact, found, err
}

func (r *ContactRepositoryImpl) GetByName(name string) (contact entities.Contact, found bool, err error) {
	err = r.read(func(s *phonebook.Store) {
		contact, found = s.GetByName(name)
	})
	return contact, found, err
}

func (r *ContactRepositoryImpl) Update(id entities.ID, patch entities.ContactPatch) (contact entities.Contact, err error) {
	err = r.write(func(s *phonebook.Store) (bool, error) {
		if err := s.Update(id, patch); err != nil {
			return false, err
		}
		contact, _ = s.GetByID(id)
		return true, nil
	})
	if err != nil {
		return entities.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

// Delete removes the contact and reports whether it existed.
func (r *ContactRepositoryImpl) Delete(id entities.ID) (deleted bool, err error) {
	err = r.write(func(s *phonebook.Store) (bool, error) {
		deleted = s.Delete(id)
		return deleted, nil
	})
	return deleted, err
}

func (r *ContactRepositoryImpl) List() (contacts []entities.Contact, err error) {
	err = r.read(func(s *phonebook.Store) {
		contacts = s.Snapshot()
	})
	return contacts, err
}

func (r *ContactRepositoryImpl) Count() (n int, err error) {
	err = r.read(func(s *phonebook.Store) {
		n = s.Len()
	})
	return n, err
}

// Snapshot copies the contacts under the read lock. The copy is detached, so
// it can be serialized after the lock is released.
func (r *ContactRepositoryImpl) Snapshot() (snap entities.Snapshot, err error) {
	err = r.read(func(s *phonebook.Store) {
		snap = entities.Snapshot{Version: r.version, Contacts: s.Snapshot()}
	})
	return snap, err
}

// Replace swaps in a freshly loaded store. It counts as a mutation.
func (r *ContactRepositoryImpl) Replace(store *phonebook.Store) error {
	return r.write(func(s *phonebook.Store) (bool, error) {
		r.store = store
		return true, nil
	})
}

func (r *ContactRepositoryImpl) read(fn func(s *phonebook.Store)) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.poisoned.Load() {
		return entities.ErrPoisoned
	}
	fn(r.store)
	return nil
}

func (r *ContactRepositoryImpl) write(fn func(s *phonebook.Store) (bool, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.poisoned.Load() {
		return entities.ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			r.poisoned.Store(true)
		}
	}()

	changed, err := fn(r.store)
	completed = true
	if err != nil {
		return err
	}
	if changed {
		r.version++
	}
	return nil
}
