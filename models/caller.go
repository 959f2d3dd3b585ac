package models

// Caller is the authenticated identity attached to a request by the auth
// middleware. It is immutable once created.
type Caller struct {
	ID   string
	Name string
}

// IsOwnerOf reports whether the caller created the given post.
func (c Caller) IsOwnerOf(post Post) bool {
	return c.ID != "" && c.ID == post.Creator
}
