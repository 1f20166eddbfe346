package cryptox

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for new hashes. It matches the cost
// of the admin hashes already stored, so existing records keep verifying.
const PasswordCost = 10

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
	ErrInvalidHash      = errors.New("invalid password hash")
)

// HashPassword generates a salted bcrypt hash in modular crypt format
// ($2a$10$...).
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash in
// constant time. It returns ErrPasswordMismatch for a wrong password and
// ErrInvalidHash when the stored hash is unusable.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return ErrPasswordMismatch
	default:
		return ErrInvalidHash
	}
}

// DummyVerify burns the same time as a real comparison. Sign-in calls it when
// the username is unknown so response timing does not reveal which field was
// wrong.
func DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
}

var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), PasswordCost)
	if err != nil {
		panic("cryptox: failed to build dummy hash: " + err.Error())
	}
	return h
})
