package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/matjipduo/backend/internal/session"
	"github.com/matjipduo/backend/internal/types"
)

var (
	// ErrInvalidSecret means the supplied passphrase did not match.
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrInvalidSession means the token is malformed, expired or the
	// session behind it was logged out.
	ErrInvalidSession = errors.New("invalid session")
)

// Session is a logged-in state. There is deliberately no user
// identity behind it: the app is shared by exactly two people behind
// one passphrase.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService gates the app behind the shared passphrase and hands
// out session tokens. Sessions live in an explicit store, not in
// ambient global state, so logout genuinely revokes them.
type AuthService struct {
	passphraseHash []byte
	jwtSecret      string
	sessions       session.Store
	ttl            time.Duration
}

// NewAuthService creates a new AuthService instance. The passphrase
// is hashed at construction so the plaintext is not kept around.
func NewAuthService(passphrase, jwtSecret string, sessions session.Store, ttl time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		passphraseHash: hash,
		jwtSecret:      jwtSecret,
		sessions:       sessions,
		ttl:            ttl,
	}, nil
}

// Login checks the shared secret and, if it matches, issues a session
// token and registers the session id in the store.
func (s *AuthService) Login(ctx context.Context, secret string) (*Session, error) {
	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(secret)); err != nil {
		return nil, ErrInvalidSecret
	}

	id := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)
	claims := types.SessionClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Put(ctx, id, s.ttl); err != nil {
		return nil, persistErr("store session", err)
	}
	return &Session{ID: id, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session behind the token. Revoking an already
// dead session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return ErrInvalidSession
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return persistErr("delete session", err)
	}
	return nil
}

// ValidateSession parses the token and checks the session id is still
// live in the store.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*types.SessionClaims, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	alive, err := s.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, persistErr("check session", err)
	}
	if !alive {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (s *AuthService) parseToken(token string) (*types.SessionClaims, error) {
	var claims types.SessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	return &claims, nil
}
