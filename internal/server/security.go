package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nxtwatch/nxtwatch/internal/httputil"
)

type SecurityConfig struct {
	BaseURL string
	// AssetHosts serve thumbnails, avatars and failure illustrations.
	AssetHosts []string
}

const embedFrameSource = "https://www.youtube-nocookie.com"

func securityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	strictTransport := strings.HasPrefix(cfg.BaseURL, "https://")

	assets := ""
	if len(cfg.AssetHosts) > 0 {
		assets = " " + strings.Join(cfg.AssetHosts, " ")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nonce := httputil.GenerateNonce()
			ctx := httputil.ContextWithNonce(r.Context(), nonce)

			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

			csp := fmt.Sprintf(
				"default-src 'self'; img-src 'self' data:%s; media-src 'self' https:; frame-src %s; script-src 'self' 'nonce-%s'; style-src 'self' 'nonce-%s'; form-action 'self'; frame-ancestors 'self';",
				assets, embedFrameSource, nonce, nonce,
			)
			w.Header().Set("Content-Security-Policy", csp)

			if strictTransport {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
