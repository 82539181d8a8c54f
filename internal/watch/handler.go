package watch

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nxtwatch/nxtwatch/internal/auth"
	"github.com/nxtwatch/nxtwatch/internal/httputil"
	"github.com/nxtwatch/nxtwatch/internal/saved"
	"github.com/nxtwatch/nxtwatch/internal/videoapi"
)

// refresher is implemented by fetchers that memoize lookups.
type refresher interface {
	Refresh(ctx context.Context, token, id string) (videoapi.Detail, error)
}

type Handler struct {
	videos        videoapi.Fetcher
	saved         saved.Store
	secureCookies bool
	now           func() time.Time
}

func NewHandler(videos videoapi.Fetcher, store saved.Store, secureCookies bool) *Handler {
	return &Handler{
		videos:        videos,
		saved:         store,
		secureCookies: secureCookies,
		now:           time.Now,
	}
}

// load runs one fetch through the state machine.
func (h *Handler) load(ctx context.Context, state State, refresh bool) State {
	state = Start(state)

	fetch := h.videos.Video
	if r, ok := h.videos.(refresher); ok && refresh {
		fetch = r.Refresh
	}

	video, err := fetch(ctx, auth.TokenFromContext(ctx), state.VideoID)
	if err != nil {
		slog.Warn("video fetch failed", "video_id", state.VideoID, "error", err)
		return Fail(state)
	}
	return Succeed(state, video)
}

func (h *Handler) viewer(r *http.Request) Viewer {
	v := Viewer{Theme: themeFromRequest(r)}
	list, err := h.saved.List(r.Context(), auth.OwnerFromContext(r.Context()))
	if err != nil {
		slog.Error("failed to list saved videos", "error", err)
		return v
	}
	v.SavedVideos = list
	return v
}

// Page renders the video detail page. A request with retry=1 comes from
// the failure view's Retry button and always goes to the API.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	state := NewState(chi.URLParam(r, "id"), ParseReaction(r.URL.Query().Get("reaction")))
	state = h.load(r.Context(), state, r.URL.Query().Get("retry") == "1")

	var buf bytes.Buffer
	if err := Render(&buf, state, h.viewer(r), h.now(), httputil.NonceFromContext(r.Context())); err != nil {
		slog.Error("failed to render video page", "video_id", state.VideoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, ToggleLike)
}

func (h *Handler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, ToggleDislike)
}

// react applies toggle to the reaction posted by the page. Reactions stay
// in the page URL and never reach the video API.
func (h *Handler) react(w http.ResponseWriter, r *http.Request, toggle func(Reaction) Reaction) {
	id := chi.URLParam(r, "id")
	next := toggle(ParseReaction(r.PostFormValue("reaction")))
	http.Redirect(w, r, pageURL(id, next), http.StatusSeeOther)
}

// Save adds the current video to the viewer's saved collection. Saving a
// video that is already saved leaves the collection unchanged. The video is
// fetched again to get the record to store, which reaches the API unless a
// caching Fetcher is configured. When that fetch fails nothing is saved and
// the page shows the failure view.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	reaction := ParseReaction(r.PostFormValue("reaction"))
	ctx := r.Context()

	state := h.load(ctx, NewState(id, reaction), false)
	if state.Status != StatusSuccess {
		slog.Info("save skipped, video unavailable", "video_id", id)
		http.Redirect(w, r, pageURL(id, reaction), http.StatusSeeOther)
		return
	}

	if err := h.saved.Add(ctx, auth.OwnerFromContext(ctx), state.Video); err != nil {
		slog.Error("failed to save video", "video_id", id, "error", err)
		http.Error(w, "failed to save video", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, pageURL(id, reaction), http.StatusSeeOther)
}

// ToggleTheme flips the theme cookie and returns to the posted page.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := themeFromRequest(r).Toggle()
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookieName,
		Value:    next.String(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}

// safeReturn only allows same-site relative paths.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

// SavedVideos lists the viewer's saved collection as JSON.
func (h *Handler) SavedVideos(w http.ResponseWriter, r *http.Request) {
	list, err := h.saved.List(r.Context(), auth.OwnerFromContext(r.Context()))
	if err != nil {
		slog.Error("failed to list saved videos", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list saved videos")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}
