package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is fixed at 10 rounds.
const Cost = 10

// dummyHash is compared against when no user matches a login attempt so that
// unknown emails take about as long as wrong passwords.
var dummyHash = mustHash("wanderstore-dummy-password")

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword returns a salted bcrypt hash. Each call uses a fresh salt.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether plain matches hash. Malformed hashes and
// any other bcrypt error count as a mismatch.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BurnCompare performs a throwaway comparison and always reports false.
func BurnCompare(plain string) bool {
	_ = VerifyPassword(plain, dummyHash)
	return false
}

func mustHash(plain string) string {
	h, err := HashPassword(plain)
	if err != nil {
		panic("security: " + err.Error())
	}
	return h
}
