package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nxtwatch/nxtwatch/internal/httputil"
)

func serveWithSecurity(cfg SecurityConfig, inner http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	securityHeaders(cfg)(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestSecurityHeaders_CSPContainsNonce(t *testing.T) {
	var captured string
	rec := serveWithSecurity(SecurityConfig{BaseURL: "https://app.test"}, func(w http.ResponseWriter, r *http.Request) {
		captured = httputil.NonceFromContext(r.Context())
	})

	if captured == "" {
		t.Fatal("expected non-empty nonce in context")
	}
	csp := rec.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "style-src 'self' 'nonce-"+captured+"'") {
		t.Errorf("CSP should contain the style nonce, got: %s", csp)
	}
	if strings.Contains(csp, "'unsafe-inline'") {
		t.Errorf("CSP should not contain 'unsafe-inline', got: %s", csp)
	}
}

func TestSecurityHeaders_UniqueNoncePerRequest(t *testing.T) {
	var nonces []string
	for i := 0; i < 3; i++ {
		serveWithSecurity(SecurityConfig{}, func(w http.ResponseWriter, r *http.Request) {
			nonces = append(nonces, httputil.NonceFromContext(r.Context()))
		})
	}
	if nonces[0] == nonces[1] || nonces[1] == nonces[2] {
		t.Errorf("expected unique nonces per request, got %v", nonces)
	}
}

func TestSecurityHeaders_AssetHosts(t *testing.T) {
	rec := serveWithSecurity(SecurityConfig{
		AssetHosts: []string{"https://assets.ccbp.in", "https://img.example.com"},
	}, func(w http.ResponseWriter, r *http.Request) {})

	csp := rec.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "img-src 'self' data: https://assets.ccbp.in https://img.example.com;") {
		t.Errorf("CSP img-src should include asset hosts, got: %s", csp)
	}
}

func TestSecurityHeaders_AllowsEmbeddedPlayer(t *testing.T) {
	rec := serveWithSecurity(SecurityConfig{}, func(w http.ResponseWriter, r *http.Request) {})

	csp := rec.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "frame-src https://www.youtube-nocookie.com;") {
		t.Errorf("CSP should allow the embed host, got: %s", csp)
	}
	if !strings.Contains(csp, "form-action 'self'") {
		t.Errorf("CSP should restrict form targets, got: %s", csp)
	}
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	noop := func(w http.ResponseWriter, r *http.Request) {}

	if rec := serveWithSecurity(SecurityConfig{BaseURL: "https://app.test"}, noop); rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("expected HSTS header for HTTPS base URL")
	}
	if rec := serveWithSecurity(SecurityConfig{BaseURL: "http://localhost:8080"}, noop); rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("expected no HSTS for HTTP base URL")
	}
}
