package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dom/notes-api/internal/domain"
	"github.com/dom/notes-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NoteService struct {
	noteRepo repository.NoteRepository
}

func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

type NoteInput struct {
	Title string
	Text  string
	Tags  []string
}

// Create stores a new note for the authenticated owner. The owner always
// comes from the verified identity, never from the request body.
func (s *NoteService) Create(ctx context.Context, ownerID uuid.UUID, input NoteInput) (*domain.Note, error) {
	now := time.Now()
	note := &domain.Note{
		ID:         uuid.New(),
		Title:      input.Title,
		Text:       input.Text,
		OwnerID:    ownerID,
		Tags:       marshalTags(input.Tags),
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := note.Validate(); err != nil {
		return nil, err
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error) {
	return s.noteRepo.ListByOwner(ctx, ownerID)
}

// Update rewrites title, text and tags of the caller's note. The ownership
// filter runs inside the store; a miss for any reason is ErrNoteNotFound.
func (s *NoteService) Update(ctx context.Context, noteID, ownerID uuid.UUID, input NoteInput) (*domain.Note, error) {
	candidate := &domain.Note{Title: input.Title, Text: input.Text}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	patch := repository.NotePatch{
		Title: input.Title,
		Text:  input.Text,
	}
	if input.Tags != nil {
		patch.Tags = []byte(marshalTags(input.Tags))
	}

	return s.noteRepo.UpdateOwned(ctx, noteID, ownerID, patch)
}

func (s *NoteService) Delete(ctx context.Context, noteID, ownerID uuid.UUID) error {
	return s.noteRepo.DeleteOwned(ctx, noteID, ownerID)
}

func marshalTags(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)
	return datatypes.JSON(raw)
}
