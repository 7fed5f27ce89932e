package pin

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generate returns a login PIN of exactly length digits, drawn uniformly
// from [0, 10^length) and left-zero-padded. crypto/rand keeps the code
// unpredictable from timing or prior outputs.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("pin length must be positive, got %d", length)
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate pin: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

// ValidShape reports whether candidate is exactly length ASCII digits.
// Shape-invalid input is rejected before any storage lookup.
func ValidShape(candidate string, length int) bool {
	if len(candidate) != length {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return false
		}
	}
	return true
}
