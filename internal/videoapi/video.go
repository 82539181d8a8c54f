package videoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// ErrFetchFailed is returned for every failed video lookup. Transport errors,
// non-2xx responses and undecodable bodies are not distinguished.
var ErrFetchFailed = errors.New("video fetch failed")

// Detail is the normalized video record rendered by the watch page.
type Detail struct {
	ID                     string `json:"id"`
	Title                  string `json:"title"`
	Description            string `json:"description"`
	ThumbnailURL           string `json:"thumbnailUrl"`
	VideoURL               string `json:"videoUrl"`
	ViewCount              string `json:"viewCount"`
	PublishedAt            string `json:"publishedAt"`
	ChannelName            string `json:"channelName"`
	ChannelProfileImageURL string `json:"channelProfileImageUrl"`
	SubscriberCount        string `json:"subscriberCount"`
}

// Fetcher looks up a single video on behalf of the bearer of token.
type Fetcher interface {
	Video(ctx context.Context, token, id string) (Detail, error)
}

type videoResponse struct {
	VideoDetails struct {
		ID           flexString `json:"id"`
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		ViewCount    flexString `json:"view_count"`
		PublishedAt  string     `json:"published_at"`
		ThumbnailURL string     `json:"thumbnail_url"`
		VideoURL     string     `json:"video_url"`
		Channel      struct {
			Name            string     `json:"name"`
			ProfileImageURL string     `json:"profile_image_url"`
			SubscriberCount flexString `json:"subscriber_count"`
		} `json:"channel"`
	} `json:"video_details"`
}

func (r videoResponse) detail() Detail {
	v := r.VideoDetails
	return Detail{
		ID:                     string(v.ID),
		Title:                  v.Title,
		Description:            v.Description,
		ThumbnailURL:           v.ThumbnailURL,
		VideoURL:               v.VideoURL,
		ViewCount:              string(v.ViewCount),
		PublishedAt:            v.PublishedAt,
		ChannelName:            v.Channel.Name,
		ChannelProfileImageURL: v.Channel.ProfileImageURL,
		SubscriberCount:        string(v.Channel.SubscriberCount),
	}
}

// flexString accepts either a JSON string or a bare number and keeps the
// value's text verbatim ("1.4K" and 10 both render as written).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
