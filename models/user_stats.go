package models

import (
	"time"

	"gorm.io/gorm"
)

// UserStats tracks gamified progression for each user (denormalized for performance)
type UserStats struct {
	ID             string `gorm:"primaryKey;type:uuid" json:"id"` // minted by the service, never by the DB
	ExternalUserID string `gorm:"uniqueIndex;not null" json:"external_user_id"` // links to profile service

	// Core progression
	TotalPoints int64 `json:"total_points" gorm:"default:0"`
	Level       int   `json:"level" gorm:"default:1"`

	// Streaks (consecutive calendar days with at least one activity)
	CurrentStreak int `json:"current_streak" gorm:"default:0"`
	BestStreak    int `json:"best_streak" gorm:"default:0"`

	// Activity counters
	TotalVerifications int64 `json:"total_verifications" gorm:"default:0"`
	TotalRegistrations int64 `json:"total_registrations" gorm:"default:0"`
	CounterfeitFound   int64 `json:"counterfeit_found" gorm:"default:0"`

	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
