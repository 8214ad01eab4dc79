package ports

import (
	"context"
	"time"

	"github.com/phonebook/core/internal/domain/entities"
)

// ContactService interface for phonebook operations
type ContactService interface {
	CreateContact(ctx context.Context, req CreateContactRequest) (entities.Contact, error)
	GetContact(ctx context.Context, id entities.ID) (entities.Contact, bool, error)
	FindContactByName(ctx context.Context, name string) (entities.Contact, bool, error)
	UpdateContact(ctx context.Context, id entities.ID, req UpdateContactRequest) (entities.Contact, error)
	DeleteContact(ctx context.Context, id entities.ID) error
	ListContacts(ctx context.Context) ([]entities.Contact, error)
	Info(ctx context.Context) (PhonebookInfo, error)
	Reload(ctx context.Context) (int, error)
}

// Request/Response Types

type CreateContactRequest struct {
	ID     entities.ID `json:"id"`
	Name   string      `json:"name" validate:"required,max=200"`
	Number string      `json:"number" validate:"max=100"`
}

// UpdateContactRequest carries a partial update; empty fields are ignored.
// A supplied id is accepted and ignored.
type UpdateContactRequest struct {
	ID     entities.ID `json:"id"`
	Name   string      `json:"name" validate:"max=200"`
	Number string      `json:"number" validate:"max=100"`
}

type PhonebookInfo struct {
	Entries   int       `json:"entries"`
	Version   uint64    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
