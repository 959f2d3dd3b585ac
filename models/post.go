package models

import "time"

// Post is a single blog entry.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`

	// Thumbnail is the file name of the post image in upload storage.
	Thumbnail string `json:"thumbnail"`

	// Creator is the ID of the authoring user. It never changes after creation.
	Creator string `json:"creator"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Post categories accepted by the API.
const (
	CategoryAgriculture   = "Agriculture"
	CategoryBusiness      = "Business"
	CategoryEducation     = "Education"
	CategoryEntertainment = "Entertainment"
	CategoryArt           = "Art"
	CategoryInvestment    = "Investment"
	CategoryUncategorized = "Uncategorized"
	CategoryWeather       = "Weather"
)

// PostCategories lists every accepted category in display order.
var PostCategories = []string{
	CategoryAgriculture,
	CategoryBusiness,
	CategoryEducation,
	CategoryEntertainment,
	CategoryArt,
	CategoryInvestment,
	CategoryUncategorized,
	CategoryWeather,
}

// PostOrder selects the timestamp column used to sort post lists.
type PostOrder int

const (
	// OrderByUpdated sorts most recently updated first.
	OrderByUpdated PostOrder = iota
	// OrderByCreated sorts most recently created first.
	OrderByCreated
)

// PostFilter narrows a post listing. Empty fields do not filter.
type PostFilter struct {
	Category  string
	CreatorID string
	OrderBy   PostOrder
}

// PostUpdate describes a change to an existing post.
// The update applies only when CreatorID matches the stored creator.
// A nil Thumbnail leaves the current file name untouched.
type PostUpdate struct {
	ID          string
	CreatorID   string
	Title       string
	Category    string
	Description string
	Thumbnail   *string
}

// CreatePostRequest carries the multipart form of POST /api/posts.
type CreatePostRequest struct {
	CreatorID   string
	Title       string
	Category    string
	Description string
	Thumbnail   *File
}

// EditPostRequest carries the form of PATCH /api/posts/{id}.
// Thumbnail is optional.
type EditPostRequest struct {
	CallerID    string `json:"-"`
	PostID      string `json:"-"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Thumbnail   *File  `json:"-"`
}

// DeletePostRequest identifies the post to remove and who asks for it.
type DeletePostRequest struct {
	CallerID string
	PostID   string
}
