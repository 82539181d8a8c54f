package watch

import (
	"net/url"
	"strings"
)

// Player describes how the media element is rendered for a video URL.
// Hosted YouTube videos are embedded; anything else plays in a <video>.
type Player struct {
	SourceURL    string
	ThumbnailURL string
	EmbedURL     string
}

func (p Player) Embedded() bool {
	return p.EmbedURL != ""
}

func newPlayer(videoURL, thumbnailURL string) Player {
	p := Player{SourceURL: videoURL, ThumbnailURL: thumbnailURL}
	if id := youTubeID(videoURL); id != "" {
		p.EmbedURL = "https://www.youtube-nocookie.com/embed/" + url.PathEscape(id)
	}
	return p
}

func youTubeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		if u.Path == "/watch" {
			return u.Query().Get("v")
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			return firstSegment(rest)
		}
	case "youtu.be":
		return firstSegment(u.Path)
	}
	return ""
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(strings.TrimLeft(path, "/"), "/")
	return segment
}
