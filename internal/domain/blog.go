package domain

// Blog represents a single post. AuthorID is set once at creation from the
// authenticated caller's identity and never changes; title and content may
// be rewritten by any authenticated caller (shared editing, see update
// handler).
type Blog struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
}

// NewBlog creates a Blog ready for insertion. The ID is zero until the
// store persists the row.
func NewBlog(title, content string, authorID int64) *Blog {
	return &Blog{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
}
