package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/blog-api/internal/api"
	apiMiddleware "github.com/phrazzld/blog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService)
	blogHandler := api.NewBlogHandler(app.blogStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints (public)
	r.Route("/api/v1/user", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
	})

	// Blog endpoints, all gated by token verification
	r.Route("/api/v1/blog", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/", blogHandler.Create)
		r.Put("/", blogHandler.Update)
		r.Get("/bulk", blogHandler.ListAll)
		r.Get("/{id}", blogHandler.GetByID)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
