// utils/truemark.go
package utils

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// TrueMark bundles the identifiers minted at product registration: a public
// TrueMark id, a blockchain-style transaction hash, and the simulated
// microscopic pattern blob stored alongside the product.
type TrueMark struct {
	ID     string
	TxHash string
	Data   string // JSON pattern blob for the jsonb column
}

type trueMarkData struct {
	Pattern   []float64 `json:"pattern"`
	Checksum  string    `json:"checksum"`
	Version   string    `json:"version"`
	CreatedAt string    `json:"created_at"`
}

// TrueMarkGenerator mints registration identifiers. All randomness in the
// service lives behind this interface so the deterministic core stays
// testable with a canned generator.
type TrueMarkGenerator interface {
	Generate() (*TrueMark, error)
}

type randomTrueMarkGenerator struct{}

func NewTrueMarkGenerator() TrueMarkGenerator {
	return randomTrueMarkGenerator{}
}

// Generate mints "TM-<unix-millis>-<8 hex>", hashes it into a 0x-prefixed
// sha256 tx hash, and builds a 100-sample pattern blob with an md5 checksum
// of the id.
func (randomTrueMarkGenerator) Generate() (*TrueMark, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	random := hex.EncodeToString(raw)
	id := fmt.Sprintf("TM-%d-%s", time.Now().UnixMilli(), strings.ToUpper(random[:8]))

	txDigest := sha256.Sum256([]byte(id + random))
	txHash := "0x" + hex.EncodeToString(txDigest[:])

	pattern := make([]float64, 100)
	for i := range pattern {
		n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
		if err != nil {
			return nil, fmt.Errorf("failed to sample pattern point: %w", err)
		}
		pattern[i] = float64(n.Int64()) / 1_000_000
	}

	checksum := md5.Sum([]byte(id))
	data, err := json.Marshal(trueMarkData{
		Pattern:   pattern,
		Checksum:  hex.EncodeToString(checksum[:]),
		Version:   "1.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal truemark data: %w", err)
	}

	return &TrueMark{ID: id, TxHash: txHash, Data: string(data)}, nil
}
