package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{"nil", nil, false, false},
		{"unrelated", errors.New("disk full"), false, false},
		{"generic not found", ErrNotFound, true, false},
		{"user", ErrUserNotFound, true, false},
		{"podcast", ErrPodcastNotFound, true, false},
		{"wrapped episode", fmt.Errorf("find episode 7: %w", ErrEpisodeNotFound), true, false},
		{"generic duplicate", ErrDuplicate, false, true},
		{"wrapped email", fmt.Errorf("save: %w", ErrEmailExists), false, true},
		{"invalid entity", ErrInvalidEntity, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.duplicate, IsDuplicateError(tt.err))
		})
	}
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrPodcastNotFound, ErrEpisodeNotFound)
	assert.NotErrorIs(t, ErrUserNotFound, ErrPodcastNotFound)
	assert.Equal(t, "entity not found: episode", ErrEpisodeNotFound.Error())
}

func TestApplyFindOptions(t *testing.T) {
	assert.Equal(t, FindOptions{}, ApplyFindOptions())
	assert.Equal(t,
		FindOptions{IncludePassword: true, WithEpisodes: true},
		ApplyFindOptions(IncludePassword(), nil, WithEpisodes()))
}
