package auth

import "errors"

// KeyProvider holds the process-wide HMAC secret. It is built once at startup
// and shared by reference; the key never changes for the life of the process.
type KeyProvider struct {
	secret []byte
}

// NewKeyProvider returns a provider for the given secret. An empty secret is
// rejected so the service fails at startup instead of per request.
func NewKeyProvider(secret string) (*KeyProvider, error) {
	if secret == "" {
		return nil, errors.New("signing secret must not be empty")
	}
	return &KeyProvider{secret: []byte(secret)}, nil
}

// Key returns the signing key.
func (k *KeyProvider) Key() ([]byte, error) {
	if k == nil || len(k.secret) == 0 {
		return nil, ErrSigningKey
	}
	return k.secret, nil
}
