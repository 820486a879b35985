package workspace

import (
	"crypto/sha256"
	"io"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const sessionKeyInfo = "shopping-helper-admin session v1"

// SessionSealer turns session ids into PASETO v4.local tokens and back.
type SessionSealer struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
}

// NewSessionSealer derives a 32-byte key from secret, which may have any length.
func NewSessionSealer(secret string, ttl time.Duration) (*SessionSealer, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}

	raw := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionKeyInfo)), raw); err != nil {
		return nil, errors.Wrap(err, "derive session key")
	}

	key, err := paseto.V4SymmetricKeyFromBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "build session key")
	}
	return &SessionSealer{key: key, ttl: ttl}, nil
}

// Seal wraps a session id into an expiring token.
func (s *SessionSealer) Seal(sessionID string, now time.Time) string {
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.ttl))
	token.SetString("sid", sessionID)
	token.SetString("type", "session")
	return token.V4Encrypt(s.key, nil)
}

// Open validates a token and returns the session id it carries.
func (s *SessionSealer) Open(tokenString string) (string, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	token, err := parser.ParseV4Local(s.key, tokenString, nil)
	if err != nil {
		return "", errors.Wrap(err, "invalid session token")
	}

	tokenType, err := token.GetString("type")
	if err != nil || tokenType != "session" {
		return "", errors.New("invalid session token type")
	}

	sid, err := token.GetString("sid")
	if err != nil || sid == "" {
		return "", errors.New("invalid session token claims")
	}
	return sid, nil
}

// TTL returns how long sealed tokens stay valid.
func (s *SessionSealer) TTL() time.Duration {
	return s.ttl
}
