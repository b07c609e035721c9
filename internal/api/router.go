package api

import (
	"net/http"

	"github.com/dom/notes-api/internal/api/handlers"
	"github.com/dom/notes-api/internal/api/middleware"
	"github.com/dom/notes-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.Auth)
	noteHandler := handlers.NewNoteHandler(services.Note)

	// Public welcome route
	r.Get("/", handlers.Welcome)

	// Public auth routes
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	// Protected user lookup
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))
		r.Get("/user/{id}", userHandler.Get)
	})

	// Protected note routes
	r.Route("/api/notes", func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))
		r.Get("/", noteHandler.List)
		r.Post("/", noteHandler.Create)
		r.Put("/{id}", noteHandler.Update)
		r.Delete("/{id}", noteHandler.Delete)
	})

	return r
}
