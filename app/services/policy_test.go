package services

import (
	"testing"

	"blogyetu/app/models"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	post := &models.Post{ID: "p1", AuthorID: "owner"}

	tests := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"author may mutate", &models.User{ID: "owner", Role: models.RoleAuthor}, true},
		{"admin may mutate", &models.User{ID: "someone-else", Role: models.RoleAdmin}, true},
		{"admin author may mutate", &models.User{ID: "owner", Role: models.RoleAdmin}, true},
		{"other author may not", &models.User{ID: "someone-else", Role: models.RoleAuthor}, false},
		{"nil actor may not", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.actor, post))
		})
	}

	assert.False(t, CanMutate(&models.User{ID: "owner"}, nil))
}
