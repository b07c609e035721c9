package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MaxTitleLength = 50
	MaxTextLength  = 300
)

type Note struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	Title      string         `json:"title" gorm:"not null"`
	Text       string         `json:"text" gorm:"not null"`
	OwnerID    uuid.UUID      `json:"owner" gorm:"type:uuid;index;not null"`
	Tags       datatypes.JSON `json:"tags,omitempty" gorm:"type:jsonb;default:'[]'"`
	CreatedAt  time.Time      `json:"createdAt"`
	ModifiedAt time.Time      `json:"modifiedAt"`
}

// Validate checks the length invariants before any write reaches the store.
// Limits count characters, not bytes, so multi-byte text is not penalized.
func (n *Note) Validate() error {
	if n.Title == "" || utf8.RuneCountInString(n.Title) > MaxTitleLength {
		return ErrInvalidTitle
	}
	if n.Text == "" || utf8.RuneCountInString(n.Text) > MaxTextLength {
		return ErrInvalidText
	}
	return nil
}
