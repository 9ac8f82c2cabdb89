// models/product.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          string `json:"id" gorm:"primaryKey"`
	OwnerID     string `json:"owner_id" gorm:"index;not null"` // profile service user id
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"index"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	// 🤖 Classification result
	IndustryID string  `json:"industry_id"` // FK into the industry catalog (slug)
	Category   string  `json:"category"`    // raw category string from the vision model
	Confidence float64 `json:"confidence"`

	// ⛓️ Blockchain registration (mocked ledger)
	IsRegistered     bool       `json:"is_registered" gorm:"default:false"`
	TrueMarkID       *string    `json:"truemark_id,omitempty" gorm:"uniqueIndex"`
	BlockchainTxHash string     `json:"blockchain_tx_hash,omitempty"`
	TrueMarkData     string     `json:"truemark_data,omitempty" gorm:"type:jsonb"` // e.g., {"pattern": [...], "checksum": "..."}
	RegisteredAt     *time.Time `json:"registered_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// 🔗 Verification scans
	Scans []Scan `json:"scans,omitempty" gorm:"foreignKey:ProductID"`
}
