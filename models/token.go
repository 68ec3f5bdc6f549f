package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a session JWT as issued to, or presented by, a client.
type Token struct {
	// Token is the parsed or freshly built JWT.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds iss, sub, iat, exp and the jti session id.
	jwt.RegisteredClaims

	// SignedString is the compact form stored in the "token" cookie.
	SignedString string `json:"-"`

	// UserID is the owner of the session, copied from sub.
	UserID string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
