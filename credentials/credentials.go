// Package credentials isolates how secrets are stored and compared so
// the login path never depends on a particular hashing scheme.
package credentials

import "golang.org/x/crypto/bcrypt"

// Verifier hashes secrets at registration and checks them at login.
type Verifier interface {
	Hash(secret string) (string, error)
	Verify(hashed, secret string) bool
}

// BcryptVerifier verifies secrets against bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{Cost: cost}
}

func (v *BcryptVerifier) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), v.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v *BcryptVerifier) Verify(hashed, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}
