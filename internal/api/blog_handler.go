package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// BlogHandler handles the blog post endpoints. All of its routes sit
// behind the authentication middleware, which stores the caller's user ID
// in the request context.
type BlogHandler struct {
	blogStore store.BlogStore
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(blogStore store.BlogStore) *BlogHandler {
	return &BlogHandler{
		blogStore: blogStore,
	}
}

// Create handles POST /. The new post's author is the authenticated
// caller.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}

	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		RespondWithKind(w, r, KindNotLoggedIn)
		return
	}

	blog := domain.NewBlog(req.Title, req.Content, userID)
	if err := h.blogStore.Create(r.Context(), blog); err != nil {
		log.Error("failed to create blog", "error", err, "author_id", userID)
		RespondWithKind(w, r, KindPersistenceFault)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogIDResponse{ID: blog.ID})
}

// Update handles PUT /. Any authenticated caller may update any post by
// id; ownership is not checked (shared editing per the published
// contract).
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UpdateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithKind(w, r, KindInvalidInput)
		return
	}

	if err := h.blogStore.Update(r.Context(), req.ID, req.Title, req.Content); err != nil {
		if !errors.Is(err, store.ErrBlogNotFound) {
			log.Error("failed to update blog", "error", err, "blog_id", req.ID)
		}
		RespondWithKind(w, r, KindPersistenceFault)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogIDResponse{ID: req.ID})
}

// ListAll handles GET /bulk, returning every post.
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	blogs, err := h.blogStore.List(r.Context())
	if err != nil {
		log.Error("failed to list blogs", "error", err)
		RespondWithKind(w, r, KindPersistenceFault)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogListResponse{Blogs: blogs})
}

// GetByID handles GET /{id}. A missing post is not an error: the response
// is 200 with a null blog.
func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric id never reaches the datastore; it answers with
		// the same fault response a failed lookup would.
		RespondWithKind(w, r, KindPersistenceFault)
		return
	}

	blog, err := h.blogStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, BlogResponse{Blog: nil})
			return
		}
		log.Error("failed to get blog", "error", err, "blog_id", id)
		RespondWithKind(w, r, KindPersistenceFault)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogResponse{Blog: blog})
}
