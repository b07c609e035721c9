package postgres

import (
	"context"
	"time"

	"github.com/dom/notes-api/internal/domain"
	"github.com/dom/notes-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *noteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch repository.NotePatch) (*domain.Note, error) {
	values := map[string]interface{}{
		"title":       patch.Title,
		"text":        patch.Text,
		"modified_at": time.Now(),
	}
	if patch.Tags != nil {
		values["tags"] = datatypes.JSON(patch.Tags)
	}

	// Single statement filtering on both id and owner; a note owned by
	// someone else matches zero rows, same as a missing note. RETURNING
	// hands back the updated row without a second read that could race a
	// concurrent delete.
	var note domain.Note
	result := r.db.WithContext(ctx).
		Model(&note).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(values)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoteNotFound
	}

	return &note, nil
}

func (r *noteRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
