package auth

import (
	"net/http"
	"strings"
)

// ExtractToken pulls the bearer credential from the Authorization header.
// The header must contain exactly two space-separated fields, the scheme word
// and the credential; anything else is treated as no token.
func ExtractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", false
	}

	return parts[1], true
}
