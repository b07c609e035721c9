package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/notes-api/internal/domain"
	"github.com/dom/notes-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Field validation runs before any store access.
	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "The name is mandatory!")
		return
	}
	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "The email is mandatory!")
		return
	}
	if req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "The password is mandatory!")
		return
	}
	if req.Password != req.ConfirmPassword {
		writeMessage(w, http.StatusBadRequest, "The passwords do not match!")
		return
	}

	_, err := h.authService.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			writeMessage(w, http.StatusBadRequest, "Please use another email!")
			return
		}
		if errors.Is(err, domain.ErrPasswordTooLong) {
			writeMessage(w, http.StatusBadRequest, "The password must be at most 72 characters!")
			return
		}
		log.Printf("ERROR [AuthHandler.Signup] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMessage(w, http.StatusCreated, "User created successfully!")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "The email is mandatory!")
		return
	}
	if req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "The password is mandatory!")
		return
	}

	_, token, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User not found!")
		case errors.Is(err, domain.ErrInvalidPassword):
			writeMessage(w, http.StatusBadRequest, "Invalid password!")
		default:
			log.Printf("ERROR [AuthHandler.Login] %v", err)
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Msg:   "Authentication sent successfully!",
		Token: token,
	})
}
