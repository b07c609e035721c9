package handlers

import "net/http"

// Welcome greets callers on the public root route.
func Welcome(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Welcome to the Notes API!🎉")
}
