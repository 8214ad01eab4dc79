package services

import (
	"context"
	"fmt"
	"time"

	"github.com/phonebook/core/internal/domain/entities"
	"github.com/phonebook/core/internal/infrastructure/logger"
	"github.com/phonebook/core/internal/ports"
)

// ContactService handles phonebook operations. Every mutation is applied to
// the in-memory repository first; once the repository lock is released a
// snapshot is taken and handed to the persister.
type ContactService struct {
	repo        ports.ContactRepository
	persister   ports.SnapshotPersister
	logger      *logger.Logger
	saveTimeout time.Duration
}

// NewContactService creates a new contact service
func NewContactService(repo ports.ContactRepository, persister ports.SnapshotPersister, logger *logger.Logger, saveTimeout time.Duration) *ContactService {
	return &ContactService{
		repo:        repo,
		persister:   persister,
		logger:      logger.WithComponent("contacts"),
		saveTimeout: saveTimeout,
	}
}

// CreateContact adds a new contact and persists the phonebook
func (s *ContactService) CreateContact(ctx context.Context, req ports.CreateContactRequest) (entities.Contact, error) {
	created, err := s.repo.Create(entities.Contact{
		ID:     req.ID,
		Name:   req.Name,
		Number: req.Number,
	})
	if err != nil {
		s.logger.LogStoreMutation("create", req.ID, err)
		return entities.Contact{}, err
	}
	s.logger.LogStoreMutation("create", created.ID, nil)

	if err := s.persist(ctx); err != nil {
		return created, err
	}

	s.logger.Infow("Contact created", "contact_id", created.ID.String())
	return created, nil
}

// GetContact retrieves a contact by id
func (s *ContactService) GetContact(ctx context.Context, id entities.ID) (entities.Contact, bool, error) {
	return s.repo.GetByID(id)
}

// FindContactByName retrieves the contact whose normalized name matches name
func (s *ContactService) FindContactByName(ctx context.Context, name string) (entities.Contact, bool, error) {
	return s.repo.GetByName(name)
}

// UpdateContact overwrites the non-empty fields of req on the stored contact.
// An id in the request body is ignored; the path id wins.
func (s *ContactService) UpdateContact(ctx context.Context, id entities.ID, req ports.UpdateContactRequest) (entities.Contact, error) {
	updated, err := s.repo.Update(id, entities.ContactPatch{
		Name:   req.Name,
		Number: req.Number,
	})
	s.logger.LogStoreMutation("update", id, err)
	if err != nil {
		return entities.Contact{}, err
	}

	if err := s.persist(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteContact removes a contact. Deleting an unknown id succeeds and does
// not rewrite the file.
func (s *ContactService) DeleteContact(ctx context.Context, id entities.ID) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.LogStoreMutation("delete", id, err)
		return err
	}
	if !deleted {
		s.logger.Infow("Delete of unknown contact is a no-op", "contact_id", id.String())
		return nil
	}
	s.logger.LogStoreMutation("delete", id, nil)

	return s.persist(ctx)
}

// ListContacts returns every contact in id order
func (s *ContactService) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	return s.repo.List()
}

// Info reports the number of entries and the current version
func (s *ContactService) Info(ctx context.Context) (ports.PhonebookInfo, error) {
	snap, err := s.repo.Snapshot()
	if err != nil {
		return ports.PhonebookInfo{}, err
	}
	return ports.PhonebookInfo{
		Entries:   len(snap.Contacts),
		Version:   snap.Version,
		Timestamp: time.Now(),
	}, nil
}

// Reload replaces the in-memory phonebook with the file's content. On failure
// the current phonebook is kept.
func (s *ContactService) Reload(ctx context.Context) (int, error) {
	store, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.Errorw("Phonebook reload failed", "error", err.Error())
		return 0, fmt.Errorf("reload phonebook: %w", err)
	}
	if err := s.repo.Replace(store); err != nil {
		return 0, fmt.Errorf("reload phonebook: %w", err)
	}

	s.logger.Infow("Phonebook reloaded", "entries", store.Len())
	return store.Len(), nil
}

// persist snapshots the repository and waits for the write. The snapshot is
// taken after the mutation's lock is released, so it may also carry later
// mutations; the persister drops snapshots that are already on disk.
func (s *ContactService) persist(ctx context.Context) error {
	snap, err := s.repo.Snapshot()
	if err != nil {
		return err
	}

	if s.saveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.saveTimeout)
		defer cancel()
	}
	if err := s.persister.Submit(ctx, snap); err != nil {
		return fmt.Errorf("persist phonebook: %w", err)
	}
	return nil
}
