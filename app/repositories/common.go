package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var (
	// ErrNotFound is returned when the requested document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrSlugTaken is returned when a post's slug collides with an
	// existing post.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrEmailTaken is returned when a user's email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix     = "post:"
	CategoryKeyPrefix = "category:"
	UserKeyPrefix     = "user:"

	// Index keys enforcing uniqueness; the value is the owning entity's id.
	SlugIndexPrefix  = "slug:"
	EmailIndexPrefix = "email:"
)

func postKey(id string) []byte     { return []byte(PostKeyPrefix + id) }
func categoryKey(id string) []byte { return []byte(CategoryKeyPrefix + id) }
func userKey(id string) []byte     { return []byte(UserKeyPrefix + id) }
func slugKey(slug string) []byte   { return []byte(SlugIndexPrefix + slug) }
func emailKey(email string) []byte { return []byte(EmailIndexPrefix + email) }

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

// claimIndex reserves an index key for id inside txn, failing with
// taken when another entity already holds it.
func claimIndex(txn *badger.Txn, key []byte, id string, taken error) error {
	_, err := txn.Get(key)
	if err == nil {
		return taken
	}
	if err != badger.ErrKeyNotFound {
		return err
	}
	return txn.Set(key, []byte(id))
}
