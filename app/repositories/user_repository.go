package repositories

import (
	"blogyetu/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create persists a new user, claiming the email index key in the same
// transaction so duplicate registrations fail with ErrEmailTaken.
func (r *BadgerUserRepository) Create(user *models.User) error {
	data, err := marshalEntity(user)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := claimIndex(txn, emailKey(user.Email), user.ID, ErrEmailTaken); err != nil {
			return err
		}
		return txn.Set(userKey(user.ID), data)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail resolves the email index, then loads the user document.
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}
