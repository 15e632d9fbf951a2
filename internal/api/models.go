package api

import "github.com/phrazzld/blog-api/internal/domain"

// Common request/response structures

// SignupRequest defines the payload for the signup endpoint. The username
// is expected to be an email address.
type SignupRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
}

// SigninRequest defines the payload for the signin endpoint. All three
// fields participate in the credential match.
type SigninRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
}

// CreateBlogRequest defines the payload for creating a post.
type CreateBlogRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateBlogRequest defines the payload for updating a post. The target
// post is named in the body, not the path.
type UpdateBlogRequest struct {
	ID      int64  `json:"id"      validate:"required,gt=0"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// BlogIDResponse is the success body for create and update: {"id": n}.
type BlogIDResponse struct {
	ID int64 `json:"id"`
}

// BlogListResponse is the success body for the bulk listing.
type BlogListResponse struct {
	Blogs []domain.Blog `json:"blogs"`
}

// BlogResponse is the success body for fetching a single post. Blog is
// null when no post carries the requested id; absence is not an error.
type BlogResponse struct {
	Blog *domain.Blog `json:"blog"`
}
