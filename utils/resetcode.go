package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var resetCodeSpace = big.NewInt(1000000)

// GenerateResetCode draws a 6-digit code uniformly over 000000-999999.
// Collisions across accounts are acceptable; within one account the caller
// removes prior unused codes before storing a new one.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, resetCodeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
