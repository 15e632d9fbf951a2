package domain

// User represents a registered author. The ID is assigned by the database
// on insert. The password is stored exactly as supplied by the caller;
// signin matches it by column equality together with username and name.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // never exposed in JSON
	Name     string `json:"name"`
}

// NewUser creates a User ready for insertion. The ID is zero until the
// store persists the row.
func NewUser(username, password, name string) *User {
	return &User{
		Username: username,
		Password: password,
		Name:     name,
	}
}
