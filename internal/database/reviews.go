package database

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"danawa-backend/internal/models"
)

// ReviewStore holds customer reviews, newest first.
type ReviewStore interface {
	// List returns up to limit reviews starting at offset, clipped to the
	// collection, and the collection size observed under the same lock.
	List(offset, limit int) ([]models.Review, int)
	Count() int
	GetByID(id int) (models.Review, error)
	// Prepend assigns id and date to the submission and stores it first.
	Prepend(sub models.ReviewSubmission, now time.Time) (models.Review, error)
}

// MemoryReviewStore is a ReviewStore backed by a slice.
//
// Ids are size+1. That only stays unique because nothing is ever removed;
// a store that supports deletion needs a real sequence.
type MemoryReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewMemoryReviewStore(seed []models.Review) *MemoryReviewStore {
	return &MemoryReviewStore{reviews: slices.Clone(seed)}
}

func (s *MemoryReviewStore) List(offset, limit int) ([]models.Review, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.reviews)
	start := min(max(offset, 0), total)
	end := start + min(max(limit, 0), total-start)

	out := make([]models.Review, end-start)
	copy(out, s.reviews[start:end])
	return out, total
}

func (s *MemoryReviewStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

func (s *MemoryReviewStore) GetByID(id int) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Review{}, fmt.Errorf("review %d: %w", id, ErrNotFound)
}

func (s *MemoryReviewStore) Prepend(sub models.ReviewSubmission, now time.Time) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review := models.Review{
		ID:      len(s.reviews) + 1,
		Name:    sub.Name,
		Date:    now.Format(models.DateLayout),
		Rating:  sub.Rating,
		Comment: sub.Comment,
		Service: sub.Service,
	}

	s.reviews = slices.Insert(s.reviews, 0, review)
	return review, nil
}
