// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/repositories"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user

	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type HistoryRepository struct {
	mu      sync.Mutex
	entries []models.HistoryEntry
	now     func() time.Time
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{now: time.Now}
}

func (r *HistoryRepository) Append(_ context.Context, entry *models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	r.entries = append(r.entries, *entry)

	return nil
}

func (r *HistoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.HistoryEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

// Entries returns a copy of everything appended so far.
func (r *HistoryRepository) Entries() []models.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.HistoryEntry(nil), r.entries...)
}
