package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// Logger is the minimal logging surface the codec needs.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultTTL is the session token lifetime when no override is given.
const DefaultTTL = 14 * 24 * time.Hour

// Claims is the session token payload. The subject travels under the
// "id" claim so the cookie format stays compatible with existing clients.
type Claims struct {
	jwt.RegisteredClaims
	UID string `json:"id"`
}

// UserID returns the token's subject identifier.
func (c *Claims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// Service signs and verifies compact session tokens with a symmetric
// key. The key is injected at construction; the codec never touches the
// process environment.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	logger     Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the default token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithLogger sets the codec logger.
func WithLogger(logger Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a session token codec.
func NewService(signingKey []byte, opts ...Option) *Service {
	s := &Service{
		signingKey: signingKey,
		ttl:        DefaultTTL,
		logger:     nopLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session token for the given subject, valid from now for
// the configured lifetime.
func (s *Service) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", errors.New("subject id is required", errors.CategoryBadInput)
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UID: subjectID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims, or
// nil for any invalid token: malformed, expired, or signed with a
// different key. Verification failures never escape as errors; they are
// logged and surface as nil.
func (s *Service) Verify(raw string) *Claims {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		s.logger.Debug("session token rejected", "error", err)
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		s.logger.Error("session token claims could not be decoded")
		return nil
	}

	return claims
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
