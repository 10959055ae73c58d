package core

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Credential holds an API key and its decoded secret.
// It is immutable after construction and safe to share between goroutines.
type Credential struct {
	key    string
	secret []byte
}

// NewCredential decodes the base64 secret once and returns a ready-to-use Credential.
func NewCredential(key, secret string) (*Credential, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty api key", ErrInvalidCredential)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: empty api secret", ErrInvalidCredential)
	}
	raw, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, errors.Join(ErrInvalidCredential, fmt.Errorf("decode api secret: %w", err))
	}
	return &Credential{key: key, secret: raw}, nil
}

// Key returns the API key sent in the API-Key header.
func (c *Credential) Key() string {
	return c.key
}

// Secret returns a copy of the raw secret.
func (c *Credential) Secret() []byte {
	s := make([]byte, len(c.secret))
	copy(s, c.secret)
	return s
}

// String masks the key and omits the secret.
func (c *Credential) String() string {
	return fmt.Sprintf("Credential{Key:%s}", maskKey(c.key))
}

// GoString keeps %#v from printing the secret.
func (c *Credential) GoString() string {
	return c.String()
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
