package repositories

import (
	"sort"

	"blogyetu/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create persists a new post. The slug index key is claimed in the same
// transaction as the document write, so a colliding slug fails with
// ErrSlugTaken and nothing is persisted.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := claimIndex(txn, slugKey(post.Slug), post.ID, ErrSlugTaken); err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns one page of posts ordered by creation time descending,
// with the post id as a stable tie-break, plus the total post count.
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.Post, int, error) {
	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})

	total := len(posts)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return posts[offset:end], total, nil
}

// Update overwrites an existing post. When the slug changed, the old
// index key is released and the new one claimed in the same transaction.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(post.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		if existing.Slug != post.Slug {
			if err := claimIndex(txn, slugKey(post.Slug), post.ID, ErrSlugTaken); err != nil {
				return err
			}
			if err := txn.Delete(slugKey(existing.Slug)); err != nil {
				return err
			}
		}

		return txn.Set(postKey(post.ID), data)
	})
}

// Delete removes a post and releases its slug. Embedded comments go
// with the document; nothing else cascades.
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		}); err != nil {
			return err
		}

		if err := txn.Delete(slugKey(existing.Slug)); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}

// AppendComment appends a comment to a post's embedded comment list in
// a single read-modify-write transaction, so concurrent appends to the
// same post serialize on the document.
func (r *BadgerPostRepository) AppendComment(postID string, comment models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(postID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		post.AppendComment(comment)

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(postID), data)
	})
}
