package services

import (
	"errors"

	"blogyetu/app/models"
)

// ErrNotAuthorized is returned when the acting user may not mutate the
// target resource.
var ErrNotAuthorized = errors.New("not authorized")

// CanMutate reports whether actor may update or delete post: the post's
// author may, and so may any admin. Everyone else may not.
func CanMutate(actor *models.User, post *models.Post) bool {
	if actor == nil || post == nil {
		return false
	}
	return actor.ID == post.AuthorID || actor.IsAdmin()
}
