// Package token produces the numeric one-time codes that gate payment
// confirmation.
package token

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/idelsangithub/business-logic-service/core"
)

func New() core.TokenGenerator {
	return generator{}
}

type generator struct{}

var ten = big.NewInt(10)

// Generate returns length uniformly random digits. crypto/rand keeps the
// code unguessable within its validity window.
func (generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", length)
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("read random digit: %w", err)
		}

		digits[i] = '0' + byte(n.Int64())
	}

	return string(digits), nil
}
