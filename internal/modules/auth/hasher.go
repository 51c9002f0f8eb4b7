package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/georgemunganga/retail/internal/config"
	"github.com/georgemunganga/retail/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

var errPasswordMismatch = errors.New("password mismatch")

// BcryptHasher stores passwords as bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h BcryptHasher) Compare(stored, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
}

// PlaintextHasher keeps passwords as entered, for schemas created before hashing.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(password string) (string, error) { return password, nil }

func (PlaintextHasher) Compare(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return errPasswordMismatch
	}
	return nil
}

// NewHasher returns the hasher for a PASSWORD_SCHEME value.
func NewHasher(scheme string) (user.Hasher, error) {
	switch scheme {
	case config.SchemeBcrypt, "":
		return BcryptHasher{}, nil
	case config.SchemePlaintext:
		return PlaintextHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}
