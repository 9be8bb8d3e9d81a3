package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one authenticated analysis. Rows are append-only.
type HistoryEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Score          float64   `gorm:"not null" json:"score"`
	ATSScore       float64   `gorm:"not null;default:0" json:"ats_score"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HistoryEntry) TableName() string {
	return "history"
}
