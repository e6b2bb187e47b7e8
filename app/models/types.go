package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User roles.
const (
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// Post is a blog post document with its comments embedded.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title" validate:"required,max=100"`
	Content       string    `json:"content" validate:"required"`
	Excerpt       string    `json:"excerpt,omitempty" validate:"max=200"`
	FeaturedImage string    `json:"featuredImage"`
	CategoryIDs   []string  `json:"categories"`
	AuthorID      string    `json:"author" validate:"required"`
	Slug          string    `json:"slug" validate:"required"`
	Comments      []Comment `json:"comments"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Comment is embedded in its post; it is only ever appended.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text" validate:"required,max=500"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category is a label posts reference by id.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
	Slug string `json:"slug"`
}

// User is an account that authors posts and comments. PasswordHash is
// stored with the document but never appears in API responses, which
// always go through UserRef.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Avatar       string `json:"avatar"`
	Role         string `json:"role" validate:"required,oneof=author admin"`
	PasswordHash string `json:"passwordHash,omitempty"`
}
