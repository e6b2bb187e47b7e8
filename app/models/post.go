package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Title = strings.TrimSpace(p.Title)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}

// AppendComment adds a comment to the end of the post's comment list.
// Comments are never reordered or removed through this layer.
func (p *Post) AppendComment(comment Comment) {
	p.Comments = append(p.Comments, comment)
	p.UpdatedAt = time.Now()
}
