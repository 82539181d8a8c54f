package watch

import (
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/nxtwatch/nxtwatch/internal/saved"
	"github.com/nxtwatch/nxtwatch/internal/videoapi"
)

// Viewer is the shared context a page is rendered against.
type Viewer struct {
	Theme       Theme
	SavedVideos []videoapi.Detail
}

func (v Viewer) IsLight() bool {
	return v.Theme == ThemeLight
}

func (v Viewer) IsSaved(id string) bool {
	return saved.Contains(v.SavedVideos, id)
}

type pageData struct {
	Nonce     string
	Theme     string
	NextTheme string
	Variant   Variant
	View      string
	PageURL   string
	ReturnTo  string
	Reaction  string
	Content   contentData
}

type contentData struct {
	Video         videoapi.Detail
	Player        Player
	Published     string
	Like          ToggleState
	Dislike       ToggleState
	Save          ToggleState
	SaveLabel     string
	LikeAction    string
	DislikeAction string
	SaveAction    string
}

func pageURL(id string, r Reaction) string {
	u := "/videos/" + url.PathEscape(id)
	if s := r.String(); s != "" {
		u += "?reaction=" + s
	}
	return u
}

func newPageData(state State, viewer Viewer, now time.Time, nonce string) pageData {
	variant := VariantFor(viewer.Theme)
	base := "/videos/" + url.PathEscape(state.VideoID)
	p := pageData{
		Nonce:     nonce,
		Theme:     viewer.Theme.String(),
		NextTheme: viewer.Theme.Toggle().String(),
		Variant:   variant,
		View:      state.Status.String(),
		PageURL:   base,
		ReturnTo:  pageURL(state.VideoID, state.Reaction),
		Reaction:  state.Reaction.String(),
	}

	if state.Status != StatusSuccess {
		return p
	}

	isSaved := viewer.IsSaved(state.Video.ID)
	saveLabel := "Save"
	if isSaved {
		saveLabel = "Saved"
	}
	p.Content = contentData{
		Video:         state.Video,
		Player:        newPlayer(state.Video.VideoURL, state.Video.ThumbnailURL),
		Published:     PublishedAgo(state.Video.PublishedAt, now),
		Like:          toggleStateOf(state.Reaction.Liked),
		Dislike:       toggleStateOf(state.Reaction.Disliked),
		Save:          toggleStateOf(isSaved),
		SaveLabel:     saveLabel,
		LikeAction:    base + "/like",
		DislikeAction: base + "/dislike",
		SaveAction:    base + "/save",
	}
	return p
}

// Render writes the full page for state. Which view appears inside the
// page depends only on state.Status.
func Render(w io.Writer, state State, viewer Viewer, now time.Time, nonce string) error {
	return pageTemplate.Execute(w, newPageData(state, viewer, now, nonce))
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{if eq .View "success"}}{{.Content.Video.Title}} | {{end}}Nxt Watch</title>
    {{- if eq .View "success"}}
    <meta property="og:title" content="{{.Content.Video.Title}}">
    <meta property="og:type" content="video.other">
    <meta property="og:image" content="{{.Content.Video.ThumbnailURL}}">
    {{- end}}
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: Roboto, -apple-system, "Segoe UI", sans-serif; min-height: 100vh; }
        .page-light { background: #f9f9f9; color: #1e293b; }
        .page-dark { background: #0f0f0f; color: #f9f9f9; }
        header { display: flex; align-items: center; justify-content: space-between; padding: 1rem 2rem; }
        header img { height: 32px; }
        .theme-toggle { background: none; border: 1px solid currentColor; color: inherit; border-radius: 4px; padding: 4px 12px; cursor: pointer; }
        main { max-width: 1080px; margin: 0 auto; padding: 1rem 2rem 3rem; }
        .loader-container { display: flex; justify-content: center; align-items: center; min-height: 60vh; }
        .loader-dots span { display: inline-block; width: 12px; height: 12px; margin: 0 4px; border-radius: 50%; background: #4094ef; animation: pulse 1s infinite ease-in-out; }
        .loader-dots span:nth-child(2) { animation-delay: 0.2s; }
        .loader-dots span:nth-child(3) { animation-delay: 0.4s; }
        @keyframes pulse { 0%, 80%, 100% { opacity: 0.2; } 40% { opacity: 1; } }
        .failure-view { display: flex; flex-direction: column; align-items: center; text-align: center; padding-top: 3rem; }
        .failure-view img { width: 320px; max-width: 100%; }
        .failure-heading { margin-top: 1.5rem; font-size: 1.5rem; font-weight: 600; }
        .failure-para { margin-top: 0.75rem; color: #64748b; }
        .failure-light .failure-heading { color: #1e293b; }
        .failure-dark .failure-heading { color: #f9f9f9; }
        .failure-button { margin-top: 1.25rem; background: #4f46e5; color: #fff; border: none; border-radius: 4px; padding: 8px 24px; cursor: pointer; }
        .player { position: relative; width: 100%; aspect-ratio: 16 / 9; background: #000; }
        .player video, .player iframe { width: 100%; height: 100%; border: 0; }
        .video-title { margin-top: 1rem; font-size: 1.125rem; }
        .title-light { color: #1e293b; }
        .title-dark { color: #f9f9f9; }
        .details-container { display: flex; flex-wrap: wrap; justify-content: space-between; align-items: center; margin-top: 0.75rem; }
        .channel-name, .views { color: #64748b; font-size: 0.875rem; }
        .buttons { display: flex; gap: 1rem; }
        .buttons form { display: inline; }
        .button { display: flex; align-items: center; gap: 4px; background: none; border: none; color: #64748b; cursor: pointer; font-size: 0.875rem; }
        .button-icon { width: 20px; height: 20px; fill: currentColor; }
        .active { color: #2563eb; }
        hr { margin: 1rem 0; border: none; border-top: 1px solid; }
        .rule-light { border-color: #cbd5e1; }
        .rule-dark { border-color: #475569; }
        .channel-block { display: flex; gap: 1rem; }
        .channel-img { width: 48px; height: 48px; border-radius: 50%; }
        .channel-light { color: #1e293b; }
        .channel-dark { color: #f9f9f9; }
        .description { margin-top: 1rem; line-height: 1.5; }
    </style>
</head>
<body class="{{.Variant.Page}}">
    <header>
        <img src="{{.Variant.Logo}}" alt="website logo">
        <form method="post" action="/theme">
            <input type="hidden" name="return" value="{{.ReturnTo}}">
            <button type="submit" class="theme-toggle" data-testid="theme">Switch to {{.NextTheme}} theme</button>
        </form>
    </header>
    <main id="video-view" data-status="{{.View}}">
    {{- if eq .View "loading"}}{{template "loading" .}}{{end}}
    {{- if eq .View "failure"}}{{template "failure" .}}{{end}}
    {{- if eq .View "success"}}{{template "content" .}}{{end}}
    </main>
</body>
</html>
{{define "loading"}}
        <div class="loader-container" data-testid="loader">
            <div class="loader-dots"><span></span><span></span><span></span></div>
        </div>
{{- end}}
{{define "failure"}}
        <div class="failure-view {{.Variant.Failure}}" data-testid="failure-view">
            <img src="{{.Variant.FailureImage}}" alt="failure view">
            <p class="failure-heading">Oops! Something went wrong</p>
            <p class="failure-para">We are having some trouble to complete your request. Please try again.</p>
            <form method="get" action="{{.PageURL}}">
                {{- if .Reaction}}
                <input type="hidden" name="reaction" value="{{.Reaction}}">
                {{- end}}
                <input type="hidden" name="retry" value="1">
                <button type="submit" class="failure-button">Retry</button>
            </form>
        </div>
{{- end}}
{{define "content"}}
        {{- with .Content}}
        <div class="video-details" data-testid="video-details">
            <div class="player" data-video-url="{{.Player.SourceURL}}" data-thumbnail-url="{{.Player.ThumbnailURL}}">
                {{- if .Player.Embedded}}
                <iframe src="{{.Player.EmbedURL}}" title="{{.Video.Title}}" allow="encrypted-media; picture-in-picture" allowfullscreen></iframe>
                {{- else}}
                <video id="player" controls preload="none" poster="{{.Player.ThumbnailURL}}" src="{{.Player.SourceURL}}"></video>
                {{- end}}
            </div>
            <p class="video-title {{$.Variant.Title}}">{{.Video.Title}}</p>
            <div class="details-container">
                <div>
                    <p class="channel-name">{{.Video.ChannelName}}</p>
                    <p class="views">{{.Video.ViewCount}} Views . {{.Published}}</p>
                </div>
                <div class="buttons">
                    <form method="post" action="{{.LikeAction}}">
                        <input type="hidden" name="reaction" value="{{$.Reaction}}">
                        <button type="submit" class="button {{.Like.Class}}" data-testid="like">
                            <svg class="button-icon" viewBox="0 0 24 24" aria-hidden="true"><path d="M2 21h3V9H2v12zM22 10c0-1.1-.9-2-2-2h-6.3l1-4.6v-.3c0-.4-.2-.8-.4-1.1L13.2 1 6.6 7.6C6.2 7.9 6 8.4 6 9v10c0 1.1.9 2 2 2h9c.8 0 1.5-.5 1.8-1.2l3-7.1c.1-.2.2-.5.2-.7v-2z"/></svg>
                            <span>Like</span>
                        </button>
                    </form>
                    <form method="post" action="{{.DislikeAction}}">
                        <input type="hidden" name="reaction" value="{{$.Reaction}}">
                        <button type="submit" class="button {{.Dislike.Class}}" data-testid="dislike">
                            <svg class="button-icon" viewBox="0 0 24 24" aria-hidden="true"><path d="M15 3H6c-.8 0-1.5.5-1.8 1.2l-3 7.1c-.1.2-.2.5-.2.7v2c0 1.1.9 2 2 2h6.3l-1 4.6v.3c0 .4.2.8.4 1.1l1.1 1 6.6-6.6c.4-.4.6-.9.6-1.4V5c0-1.1-.9-2-2-2zm4 0v12h3V3h-3z"/></svg>
                            <span>Dislike</span>
                        </button>
                    </form>
                    <form method="post" action="{{.SaveAction}}">
                        <input type="hidden" name="reaction" value="{{$.Reaction}}">
                        <button type="submit" class="button {{.Save.Class}}" data-testid="save">
                            <svg class="button-icon" viewBox="0 0 24 24" aria-hidden="true"><path d="M4 6h12v2H4zm0 4h12v2H4zm0 4h8v2H4zm14 0v-3h-2v3h-3v2h3v3h2v-3h3v-2z"/></svg>
                            <span>{{.SaveLabel}}</span>
                        </button>
                    </form>
                </div>
            </div>
            <hr class="{{$.Variant.Rule}}">
            <div class="channel-block">
                <img src="{{.Video.ChannelProfileImageURL}}" class="channel-img" alt="channel logo">
                <div>
                    <p class="channel-title {{$.Variant.Channel}}">{{.Video.ChannelName}}</p>
                    <p class="channel-name">{{.Video.SubscriberCount}} subscribers</p>
                    <p class="description {{$.Variant.Channel}}">{{.Video.Description}}</p>
                </div>
            </div>
        </div>
        {{- end}}
{{- end}}
`
