package repositories

import "blogyetu/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, int, error)
	Update(post *models.Post) error
	Delete(id string) error
	AppendComment(postID string, comment models.Comment) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id string) (*models.Category, error)
	List() ([]*models.Category, error)
	FindByIDs(ids []string) ([]*models.Category, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
