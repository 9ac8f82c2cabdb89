// models/scan.go
package models

import "time"

const (
	ScanResultAuthentic   = "authentic"
	ScanResultCounterfeit = "counterfeit"
)

// Scan records one verification attempt against a product.
type Scan struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	ProductID  string    `json:"product_id" gorm:"index;not null"`
	ScannerID  string    `json:"scanner_id"`             // empty for anonymous public scans
	Result     string    `json:"result" gorm:"not null"` // authentic | counterfeit
	Confidence float64   `json:"confidence"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
}
