package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ats-screener/internal/models"
)

type HistoryRepository interface {
	Append(ctx context.Context, entry *models.HistoryEntry) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.HistoryEntry, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Append(ctx context.Context, entry *models.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// FindByUser returns every entry of the user, newest first.
func (r *historyRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find history: %w", err)
	}

	return entries, nil
}
