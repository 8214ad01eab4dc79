package ports

import (
	"context"

	"github.com/phonebook/core/internal/domain/entities"
	"github.com/phonebook/core/internal/domain/phonebook"
)

// ContactRepository defines the guarded in-memory contact operations.
// Implementations never perform disk I/O.
type ContactRepository interface {
	Create(contact entities.Contact) (entities.Contact, error)
	GetByID(id entities.ID) (entities.Contact, bool, error)
	GetByName(name string) (entities.Contact, bool, error)
	Update(id entities.ID, patch entities.ContactPatch) (entities.Contact, error)
	Delete(id entities.ID) (bool, error)
	List() ([]entities.Contact, error)
	Count() (int, error)
	Snapshot() (entities.Snapshot, error)
	Replace(store *phonebook.Store) error
}

// SnapshotPersister writes snapshots to durable storage and reads them back.
// Both calls block until the disk work has finished.
type SnapshotPersister interface {
	Submit(ctx context.Context, snap entities.Snapshot) error
	Load(ctx context.Context) (*phonebook.Store, error)
}
