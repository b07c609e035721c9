package domain_test

import (
	"strings"
	"testing"

	"github.com/dom/notes-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNote_Validate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		text    string
		wantErr error
	}{
		{
			name:  "valid note",
			title: "Shop",
			text:  "milk",
		},
		{
			name:  "title at max length",
			title: strings.Repeat("a", 50),
			text:  "ok",
		},
		{
			name:  "text at max length",
			title: "ok",
			text:  strings.Repeat("b", 300),
		},
		{
			name:  "multi-byte title at max length",
			title: strings.Repeat("á", 50),
			text:  "ok",
		},
		{
			name:  "multi-byte text within limit",
			title: "ok",
			text:  strings.Repeat("é", 200),
		},
		{
			name:    "multi-byte title over limit",
			title:   strings.Repeat("á", 51),
			text:    "ok",
			wantErr: domain.ErrInvalidTitle,
		},
		{
			name:    "multi-byte text over limit",
			title:   "ok",
			text:    strings.Repeat("é", 301),
			wantErr: domain.ErrInvalidText,
		},
		{
			name:    "empty title",
			title:   "",
			text:    "some text",
			wantErr: domain.ErrInvalidTitle,
		},
		{
			name:    "title too long",
			title:   strings.Repeat("a", 51),
			text:    "some text",
			wantErr: domain.ErrInvalidTitle,
		},
		{
			name:    "empty text",
			title:   "a title",
			text:    "",
			wantErr: domain.ErrInvalidText,
		},
		{
			name:    "text too long",
			title:   "a title",
			text:    strings.Repeat("b", 301),
			wantErr: domain.ErrInvalidText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := &domain.Note{Title: tt.title, Text: tt.text}
			err := note.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
