// Package httputil holds small helpers shared by the HTTP handlers.
package httputil

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
)

type contextKey string

const nonceKey contextKey = "csp-nonce"

// GenerateNonce returns a fresh base64url value for the page's
// Content-Security-Policy. It returns "" if the system RNG fails, which makes
// the browser reject inline styles rather than accept a guessable nonce.
func GenerateNonce() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		slog.Error("failed to generate CSP nonce", "error", err)
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b[:])
}

func ContextWithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceKey, nonce)
}

// NonceFromContext returns the nonce the security middleware issued for the
// request, or "" outside of it.
func NonceFromContext(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceKey).(string)
	return nonce
}
