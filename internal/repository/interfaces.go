package repository

import (
	"context"

	"github.com/dom/notes-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// NotePatch carries the mutable note fields for an owner-scoped update.
type NotePatch struct {
	Title string
	Text  string
	Tags  []byte
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error)
	// UpdateOwned applies the patch to the note matching both id and owner.
	// Returns domain.ErrNoteNotFound when no record matches the conjunction.
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch NotePatch) (*domain.Note, error)
	// DeleteOwned removes the note matching both id and owner.
	// Returns domain.ErrNoteNotFound when no record matches the conjunction.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}

type Repositories struct {
	User UserRepository
	Note NoteRepository
}
