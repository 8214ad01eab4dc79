package entities

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrIO            = errors.New("io error")
	ErrParse         = errors.New("parse error")
	ErrInvalidID     = errors.New("id must not be supplied on create")
	ErrInvalidName   = errors.New("name must contain at least one word")
	ErrDuplicateName = errors.New("name already exists in the phonebook")
	ErrNotFound      = errors.New("contact not found")
	ErrPoisoned      = errors.New("phonebook is in an inconsistent state")
)

// IsClientError reports whether err was caused by the caller's input rather
// than by the process (disk, parse, poisoned state).
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrNotFound)
}

// Contact represents a single phonebook entry
type Contact struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

func (c Contact) String() string {
	return fmt.Sprintf("{ name: %s id: %s number: %s }", c.Name, c.ID, c.Number)
}

// ContactPatch carries the fields of a partial update. Empty fields are left
// untouched on the stored contact.
type ContactPatch struct {
	Name   string
	Number string
}

// Snapshot is a detached, point-in-time copy of the phonebook. Version grows
// by one with every mutation, so a larger version always contains the
// changes of a smaller one.
type Snapshot struct {
	Version  uint64
	Contacts []Contact
}
