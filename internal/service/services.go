package service

import (
	"github.com/dom/notes-api/internal/config"
	"github.com/dom/notes-api/internal/repository"
)

type Services struct {
	Auth *AuthService
	Note *NoteService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, cfg),
		Note: NewNoteService(repos.Note),
	}
}
