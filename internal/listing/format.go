package listing

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// TitleLimit is the longest a title renders in the table before truncation.
	TitleLimit = 85
	// BodyLimit is the longest a selftext renders in the preview before truncation.
	BodyLimit = 500

	// TruncationMarker is appended to a truncated preview body.
	TruncationMarker = "[truncated]"
)

// FormatScore renders a post score for the table. Scores above 1000 get a
// compact two-decimal suffix ("1.50k", "2.50m"); everything else renders as a
// plain integer.
func FormatScore(score int) string {
	if score <= 1000 {
		return strconv.Itoa(score)
	}

	value := float64(score)
	for _, unit := range []struct {
		limit  float64
		suffix string
	}{
		{1e12, "t"},
		{1e9, "b"},
		{1e6, "m"},
		{1e3, "k"},
	} {
		if value >= unit.limit {
			return fmt.Sprintf("%.2f%s", value/unit.limit, unit.suffix)
		}
	}
	return strconv.Itoa(score)
}

// TruncateTitle caps a title at TitleLimit runes, marking the cut with "...".
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= TitleLimit {
		return title
	}
	return string(runes[:TitleLimit]) + "..."
}

// TruncateBody caps a preview body at BodyLimit runes. Longer bodies get an
// ellipsis plus a visible truncation marker.
func TruncateBody(body string) string {
	runes := []rune(body)
	if len(runes) <= BodyLimit {
		return body
	}
	return string(runes[:BodyLimit]) + "..." + TruncationMarker
}

// DisplaySubreddit renders a subreddit name the way the table shows it.
func DisplaySubreddit(name string) string {
	return "/r/" + name
}

// StripSubredditPrefix undoes the "r/" display form used in the picker.
func StripSubredditPrefix(display string) string {
	return strings.TrimPrefix(display, "r/")
}
