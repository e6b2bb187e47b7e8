package models

import "time"

// UserRef is the display projection of a referenced user.
type UserRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// CategoryRef is the display projection of a referenced category.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CommentView is a comment with its author resolved.
type CommentView struct {
	ID        string    `json:"id"`
	User      UserRef   `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostView is a post with category, author, and comment-author
// references resolved to display fields.
type PostView struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	ContentHTML   string        `json:"contentHtml,omitempty"`
	Excerpt       string        `json:"excerpt,omitempty"`
	FeaturedImage string        `json:"featuredImage"`
	Categories    []CategoryRef `json:"categories"`
	Author        UserRef       `json:"author"`
	Slug          string        `json:"slug"`
	Comments      []CommentView `json:"comments"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// PostPage is one page of a post listing.
type PostPage struct {
	Items      []*PostView `json:"items"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	TotalCount int         `json:"totalCount"`
}

// Ref returns the user's display projection.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// Ref returns the category's display projection.
func (c *Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
}
