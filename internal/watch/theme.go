package watch

import "net/http"

const themeCookieName = "theme"

type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(v string) Theme {
	if v == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

func themeFromRequest(r *http.Request) Theme {
	cookie, err := r.Cookie(themeCookieName)
	if err != nil {
		return ThemeLight
	}
	return ParseTheme(cookie.Value)
}

// Variant is the set of theme-dependent assets and class names.
type Variant struct {
	Page         string
	Title        string
	Channel      string
	Rule         string
	Failure      string
	FailureImage string
	Logo         string
}

var variants = map[Theme]Variant{
	ThemeLight: {
		Page:         "page-light",
		Title:        "title-light",
		Channel:      "channel-light",
		Rule:         "rule-light",
		Failure:      "failure-light",
		FailureImage: "https://assets.ccbp.in/frontend/react-js/nxt-watch-failure-view-light-theme-img.png",
		Logo:         "https://assets.ccbp.in/frontend/react-js/nxt-watch-logo-light-theme-img.png",
	},
	ThemeDark: {
		Page:         "page-dark",
		Title:        "title-dark",
		Channel:      "channel-dark",
		Rule:         "rule-dark",
		Failure:      "failure-dark",
		FailureImage: "https://assets.ccbp.in/frontend/react-js/nxt-watch-failure-view-dark-theme-img.png",
		Logo:         "https://assets.ccbp.in/frontend/react-js/nxt-watch-logo-dark-theme-img.png",
	},
}

func VariantFor(t Theme) Variant {
	if v, ok := variants[t]; ok {
		return v
	}
	return variants[ThemeLight]
}

// ToggleState is the visual state of a like/dislike/save button.
type ToggleState int

const (
	ToggleInactive ToggleState = iota
	ToggleActive
)

func toggleStateOf(on bool) ToggleState {
	if on {
		return ToggleActive
	}
	return ToggleInactive
}

func (s ToggleState) Class() string {
	if s == ToggleActive {
		return "active"
	}
	return ""
}
