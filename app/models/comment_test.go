package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidate(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		comment := &Comment{ID: "c1", UserID: "u1", Text: "nice post", CreatedAt: time.Now()}
		assert.NoError(t, comment.Validate())
	})

	t.Run("missing text", func(t *testing.T) {
		comment := &Comment{ID: "c1", UserID: "u1", CreatedAt: time.Now()}
		assert.Error(t, comment.Validate())
	})

	t.Run("text too long", func(t *testing.T) {
		comment := &Comment{ID: "c1", UserID: "u1", Text: strings.Repeat("a", 501), CreatedAt: time.Now()}
		assert.Error(t, comment.Validate())
	})
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{UserID: "u1", Text: "hello"}
	comment.BeforeCreate()

	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
}
