package watch

import "github.com/nxtwatch/nxtwatch/internal/videoapi"

// Status is the lifecycle of the page's single video fetch.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "idle"
	}
}

// State is everything the video view owns. It only changes through the
// transition functions below.
type State struct {
	VideoID  string
	Status   Status
	Video    videoapi.Detail
	Reaction Reaction
}

// NewState returns the idle state for the video with id.
func NewState(id string, reaction Reaction) State {
	return State{VideoID: id, Status: StatusIdle, Reaction: reaction}
}

// Start enters loading. It is a no-op while a fetch is already in flight, so
// at most one request is outstanding per view.
func Start(s State) State {
	if s.Status == StatusLoading {
		return s
	}
	s.Status = StatusLoading
	return s
}

// Succeed replaces the video wholesale. Ignored unless loading.
func Succeed(s State, video videoapi.Detail) State {
	if s.Status != StatusLoading {
		return s
	}
	s.Status = StatusSuccess
	s.Video = video
	return s
}

// Fail records a failed fetch. Ignored unless loading.
func Fail(s State) State {
	if s.Status != StatusLoading {
		return s
	}
	s.Status = StatusFailure
	s.Video = videoapi.Detail{}
	return s
}

// Reaction holds the viewer's like/dislike flags. Liked and Disliked are
// never both true.
type Reaction struct {
	Liked    bool
	Disliked bool
}

func ToggleLike(r Reaction) Reaction {
	if r.Disliked {
		return Reaction{Liked: true}
	}
	return Reaction{Liked: !r.Liked}
}

func ToggleDislike(r Reaction) Reaction {
	if r.Liked {
		return Reaction{Disliked: true}
	}
	return Reaction{Disliked: !r.Disliked}
}

const (
	reactionLiked    = "liked"
	reactionDisliked = "disliked"
)

// ParseReaction reads the reaction query value. Anything unknown is neutral.
func ParseReaction(v string) Reaction {
	switch v {
	case reactionLiked:
		return Reaction{Liked: true}
	case reactionDisliked:
		return Reaction{Disliked: true}
	default:
		return Reaction{}
	}
}

func (r Reaction) String() string {
	switch {
	case r.Liked:
		return reactionLiked
	case r.Disliked:
		return reactionDisliked
	default:
		return ""
	}
}
