package models

import "github.com/google/uuid"

// Validate checks if the category meets all validation requirements
func (c *Category) Validate() error {
	return validate.Struct(c)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Category) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
}
