// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted at /api/contact.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeSubmit)
	r.Options("/", h.ServeOptions)
	return r
}
