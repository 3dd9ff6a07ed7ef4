package domain

import (
	"fmt"
	"time"
)

// Bounds of a podcast rating.
const (
	MinRating = 1
	MaxRating = 5
)

// Podcast is a show with an ordered list of episodes.
type Podcast struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Rating    *int      `json:"rating"`
	Episodes  []Episode `json:"episodes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Episode belongs to exactly one podcast. PodcastID is a lookup key only.
type Episode struct {
	ID        int64     `json:"id"`
	PodcastID int64     `json:"-"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPodcast creates a new, not yet persisted Podcast with no rating and no episodes.
func NewPodcast(title, category string) (*Podcast, error) {
	now := time.Now().UTC()
	p := &Podcast{
		Title:     title,
		Category:  category,
		Episodes:  []Episode{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Podcast has valid data.
func (p *Podcast) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Category == "" {
		return ErrEmptyCategory
	}
	if p.Rating != nil {
		return ValidateRating(*p.Rating)
	}
	return nil
}

// FindEpisode returns the episode with the given id, or nil.
func (p *Podcast) FindEpisode(episodeID int64) *Episode {
	for i := range p.Episodes {
		if p.Episodes[i].ID == episodeID {
			return &p.Episodes[i]
		}
	}
	return nil
}

// ValidateRating checks that a rating lies in [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}
	return nil
}

// NewEpisode creates a new, not yet persisted Episode attached to podcastID.
func NewEpisode(podcastID int64, title, category string) (*Episode, error) {
	now := time.Now().UTC()
	e := &Episode{
		PodcastID: podcastID,
		Title:     title,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks if the Episode has valid data.
func (e *Episode) Validate() error {
	if e.PodcastID == 0 {
		return ErrMissingPodcast
	}
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if e.Category == "" {
		return ErrEmptyCategory
	}
	return nil
}
