package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	keyLength   = 32
)

// GenerateKey returns prefix followed by a random base62 session key.
func GenerateKey(prefix string) (string, error) {
	s, err := RandomString(keyLength)
	if err != nil {
		return "", err
	}
	return prefix + s, nil
}

// RandomString returns n characters drawn uniformly from base62Chars.
func RandomString(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)
	limit := big.NewInt(int64(len(base62Chars)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(base62Chars[num.Int64()])
	}
	return sb.String(), nil
}
