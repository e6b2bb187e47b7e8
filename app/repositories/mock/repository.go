package mock

import (
	"sort"
	"sync"

	"blogyetu/app/models"
	"blogyetu/app/repositories"
)

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts map[string]*models.Post
	slugs map[string]string
	mutex sync.RWMutex
}

// CategoryRepository is an in-memory CategoryRepository for tests.
type CategoryRepository struct {
	categories map[string]*models.Category
	mutex      sync.RWMutex
}

// UserRepository is an in-memory UserRepository for tests.
type UserRepository struct {
	users  map[string]*models.User
	emails map[string]string
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
		slugs: make(map[string]string),
	}
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[string]*models.Category),
	}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[string]*models.User),
		emails: make(map[string]string),
	}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, taken := m.slugs[post.Slug]; taken {
		return repositories.ErrSlugTaken
	}
	m.slugs[post.Slug] = post.ID
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	all := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		clone := *post
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.posts[post.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	if existing.Slug != post.Slug {
		if _, taken := m.slugs[post.Slug]; taken {
			return repositories.ErrSlugTaken
		}
		delete(m.slugs, existing.Slug)
		m.slugs[post.Slug] = post.ID
	}
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.posts[id]
	if !exists {
		return repositories.ErrNotFound
	}
	delete(m.slugs, existing.Slug)
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) AppendComment(postID string, comment models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists {
		return repositories.ErrNotFound
	}
	post.AppendComment(comment)
	return nil
}

// CategoryRepository implementation

func (m *CategoryRepository) Create(category *models.Category) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	clone := *category
	m.categories[category.ID] = &clone
	return nil
}

func (m *CategoryRepository) GetByID(id string) (*models.Category, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	category, exists := m.categories[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *category
	return &clone, nil
}

func (m *CategoryRepository) List() ([]*models.Category, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	all := make([]*models.Category, 0, len(m.categories))
	for _, category := range m.categories {
		clone := *category
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all, nil
}

func (m *CategoryRepository) FindByIDs(ids []string) ([]*models.Category, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var found []*models.Category
	for _, id := range ids {
		if category, exists := m.categories[id]; exists {
			clone := *category
			found = append(found, &clone)
		}
	}
	return found, nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, taken := m.emails[user.Email]; taken {
		return repositories.ErrEmailTaken
	}
	m.emails[user.Email] = user.ID
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.emails[email]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *m.users[id]
	return &clone, nil
}
