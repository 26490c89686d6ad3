package types

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload for a logged-in session. The
// session id is checked against the session store on every request so
// logout actually invalidates the token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
