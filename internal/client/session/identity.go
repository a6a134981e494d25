package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity extracts a display name from the token's claims without
// verifying the signature: the client has no key and only uses the value
// as a label. The "email" claim wins over "sub". Non-JWT tokens yield "".
func Identity(token Token) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), claims); err != nil {
		return ""
	}

	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}
