package services

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// CreatePostInput is the validated request body for creating a post.
type CreatePostInput struct {
	Title         string   `json:"title" validate:"required,max=100"`
	Content       string   `json:"content" validate:"required"`
	Excerpt       string   `json:"excerpt" validate:"max=200"`
	FeaturedImage string   `json:"featuredImage"`
	Categories    []string `json:"categories"`
}

// UpdatePostInput is the validated request body for updating a post.
// Nil fields were absent from the request and leave the stored value
// untouched; Categories likewise only replaces the set when present.
type UpdatePostInput struct {
	Title         *string  `json:"title" validate:"omitempty,max=100"`
	Content       *string  `json:"content"`
	Excerpt       *string  `json:"excerpt" validate:"omitempty,max=200"`
	FeaturedImage *string  `json:"featuredImage"`
	Categories    []string `json:"categories"`
}

// AddCommentInput is the validated request body for appending a comment.
type AddCommentInput struct {
	Text string `json:"text" validate:"required,max=500"`
}

// CreateCategoryInput is the validated request body for creating a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

// RegisterInput is the validated request body for registering a user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Avatar   string `json:"avatar"`
}

// LoginInput is the validated request body for logging in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
