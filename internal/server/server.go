package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nxtwatch/nxtwatch/internal/auth"
	"github.com/nxtwatch/nxtwatch/internal/ratelimit"
	"github.com/nxtwatch/nxtwatch/internal/saved"
	"github.com/nxtwatch/nxtwatch/internal/videoapi"
	"github.com/nxtwatch/nxtwatch/internal/watch"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Videos     videoapi.Fetcher
	Saved      saved.Store
	Pinger     Pinger
	BaseURL    string
	LoginURL   string
	AssetHosts []string
	// TrustProxy takes the client address from X-Forwarded-For or X-Real-IP.
	// Only set it when a reverse proxy overwrites those headers.
	TrustProxy bool
}

type Server struct {
	router        chi.Router
	pinger        Pinger
	loginURL      string
	watchHandler  *watch.Handler
	actionLimiter *ratelimit.Limiter
	done          chan struct{}
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(SecurityConfig{
		BaseURL:    cfg.BaseURL,
		AssetHosts: cfg.AssetHosts,
	}))

	loginURL := cfg.LoginURL
	if loginURL == "" {
		loginURL = "/login"
	}

	store := cfg.Saved
	if store == nil {
		store = saved.NewMemoryStore()
	}

	s := &Server{
		router:        r,
		pinger:        cfg.Pinger,
		loginURL:      loginURL,
		actionLimiter: ratelimit.NewLimiter(2, 10),
		done:          make(chan struct{}),
	}
	if cfg.Videos != nil {
		secureCookies := strings.HasPrefix(cfg.BaseURL, "https://")
		s.watchHandler = watch.NewHandler(cfg.Videos, store, secureCookies)
	}
	go s.actionLimiter.Run(s.done)

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background work started by New.
func (s *Server) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)

	if s.watchHandler == nil {
		return
	}

	s.router.With(s.actionLimiter.Middleware).Post("/theme", s.watchHandler.ToggleTheme)

	s.router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.loginURL))
		r.Get("/videos/{id}", s.watchHandler.Page)
		r.Get("/api/saved", s.watchHandler.SavedVideos)

		r.Group(func(r chi.Router) {
			r.Use(s.actionLimiter.Middleware)
			r.Post("/videos/{id}/like", s.watchHandler.Like)
			r.Post("/videos/{id}/dislike", s.watchHandler.Dislike)
			r.Post("/videos/{id}/save", s.watchHandler.Save)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"database unreachable"}`))
			return
		}
	}
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
