package reddit

import "time"

// Post is one fetched post, reduced to the fixed whitelist of fields this
// application displays. Nothing outside this struct ever reaches a screen.
type Post struct {
	Title           string  `json:"title"`
	ID              string  `json:"id"`
	Score           int     `json:"score"`
	Ups             int     `json:"ups"`
	Downs           int     `json:"downs"`
	Author          string  `json:"author"`
	Subreddit       string  `json:"subreddit"`
	Permalink       string  `json:"permalink"`
	URL             string  `json:"url"`
	CreatedUTC      float64 `json:"created_utc"`
	Selftext        string  `json:"selftext"`
	NumComments     int     `json:"num_comments"`
	IsVideo         bool    `json:"is_video"`
	Over18          bool    `json:"over_18"`
	MediaOnly       bool    `json:"media_only"`
	Thumbnail       string  `json:"thumbnail"`
	ThumbnailWidth  int     `json:"thumbnail_width"`
	ThumbnailHeight int     `json:"thumbnail_height"`
}

// CreatedAt converts the raw epoch timestamp to local time.
func (p Post) CreatedAt() time.Time {
	return time.Unix(int64(p.CreatedUTC), 0)
}

// Subreddit is one entry from the popular-subreddits listing.
type Subreddit struct {
	DisplayName         string `json:"display_name"`
	DisplayNamePrefixed string `json:"display_name_prefixed"`
	Subscribers         int    `json:"subscribers"`
}

// Account is the subset of a user's profile the validator cares about.
type Account struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// Listing envelopes mimic the reddit.com response shape: a kind tag and a
// data node whose children each wrap one record.
type postListing struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data Post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type subredditListing struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data Subreddit `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type accountEnvelope struct {
	Data Account `json:"data"`
}
