// Package saved holds the viewer's saved-videos collection.
package saved

import (
	"context"

	"github.com/nxtwatch/nxtwatch/internal/videoapi"
)

// Store is an ordered, per-owner collection of saved videos. Add is
// idempotent: saving a video whose id is already present changes nothing.
type Store interface {
	List(ctx context.Context, owner string) ([]videoapi.Detail, error)
	Add(ctx context.Context, owner string, video videoapi.Detail) error
}

// Contains reports whether a video with id is in videos.
func Contains(videos []videoapi.Detail, id string) bool {
	for _, v := range videos {
		if v.ID == id {
			return true
		}
	}
	return false
}
