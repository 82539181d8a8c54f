package auth

import (
	"context"
	"net/http"
	"net/url"
)

// TokenCookieName is the cookie the login flow stores the bearer token in.
const TokenCookieName = "jwt_token"

type contextKey string

const (
	tokenKey contextKey = "token"
	ownerKey contextKey = "owner"
)

// TokenFromRequest returns the bearer token stored in the jwt_token cookie.
func TokenFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Middleware sends viewers without a token to loginURL. Authenticated
// requests carry the token and owner key on their context.
func Middleware(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromRequest(r)
			if !ok {
				http.Redirect(w, r, loginRedirect(loginURL, r), http.StatusFound)
				return
			}

			ctx := ContextWithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loginRedirect(loginURL string, r *http.Request) string {
	u, err := url.Parse(loginURL)
	if err != nil {
		return loginURL
	}
	q := u.Query()
	q.Set("next", r.URL.RequestURI())
	u.RawQuery = q.Encode()
	return u.String()
}

// ContextWithToken stores token and the owner key derived from it.
func ContextWithToken(ctx context.Context, token string) context.Context {
	ctx = context.WithValue(ctx, tokenKey, token)
	return context.WithValue(ctx, ownerKey, OwnerFromToken(token))
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func OwnerFromContext(ctx context.Context) string {
	if owner, ok := ctx.Value(ownerKey).(string); ok && owner != "" {
		return owner
	}
	return AnonymousOwner
}
