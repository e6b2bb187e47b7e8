package repositories

import (
	"sort"

	"blogyetu/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCategoryRepository implements CategoryRepository using BadgerDB
type BadgerCategoryRepository struct {
	db *badger.DB
}

// NewBadgerCategoryRepository creates a new BadgerCategoryRepository
func NewBadgerCategoryRepository(db *badger.DB) *BadgerCategoryRepository {
	return &BadgerCategoryRepository{db: db}
}

// Create persists a new category
func (r *BadgerCategoryRepository) Create(category *models.Category) error {
	data, err := marshalEntity(category)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(categoryKey(category.ID), data)
	})
}

// GetByID retrieves a category by ID
func (r *BadgerCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(categoryKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &category)
		})
	})

	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories ordered by name.
func (r *BadgerCategoryRepository) List() ([]*models.Category, error) {
	var categories []*models.Category

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CategoryKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var category models.Category
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &category)
			})
			if err != nil {
				return err
			}
			categories = append(categories, &category)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// FindByIDs returns the categories that exist among the given ids.
// Missing ids are skipped, not errors; callers compare counts.
func (r *BadgerCategoryRepository) FindByIDs(ids []string) ([]*models.Category, error) {
	var categories []*models.Category

	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get(categoryKey(id))
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}

			var category models.Category
			if err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &category)
			}); err != nil {
				return err
			}
			categories = append(categories, &category)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}
