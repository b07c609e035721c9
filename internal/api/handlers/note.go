package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/notes-api/internal/api/middleware"
	"github.com/dom/notes-api/internal/domain"
	"github.com/dom/notes-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

type NoteRequest struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags,omitempty"`
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied!")
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Text == "" {
		writeMessage(w, http.StatusBadRequest, "Text and title are mandatory!")
		return
	}

	note, err := h.noteService.Create(r.Context(), userID, service.NoteInput{
		Title: req.Title,
		Text:  req.Text,
		Tags:  req.Tags,
	})
	if err != nil {
		if isValidationError(err) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [NoteHandler.Create] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied!")
		return
	}

	notes, err := h.noteService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [NoteHandler.List] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied!")
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found or user mismatch")
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.noteService.Update(r.Context(), noteID, userID, service.NoteInput{
		Title: req.Title,
		Text:  req.Text,
		Tags:  req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoteNotFound):
			writeMessage(w, http.StatusNotFound, "Note not found or user mismatch")
		case isValidationError(err):
			writeMessage(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR [NoteHandler.Update] %v", err)
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied!")
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found!")
		return
	}

	if err := h.noteService.Delete(r.Context(), noteID, userID); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found!")
			return
		}
		log.Printf("ERROR [NoteHandler.Delete] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMessage(w, http.StatusOK, "Note deleted successfully")
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidTitle) || errors.Is(err, domain.ErrInvalidText)
}
