package watch

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
)

var leadingQuantity = regexp.MustCompile(`\d+\s+\S+`)

// PublishedAgo turns the API's published timestamp into a short relative
// label such as "2 years". The timestamp is reduced to its calendar date
// before comparison. Values that cannot be parsed are returned unchanged.
func PublishedAgo(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return raw
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	label := humanize.RelTime(day, now.UTC(), "ago", "from now")
	if m := leadingQuantity.FindString(label); m != "" {
		return m
	}
	label = strings.TrimSuffix(label, " ago")
	return strings.TrimSuffix(label, " from now")
}
