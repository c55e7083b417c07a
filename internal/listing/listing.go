// Package listing is the data retrieval gateway: it turns raw Reddit records
// into the tabular projection the post table renders, keeping the row order
// aligned with the underlying posts so a table selection maps straight back to
// its record.
package listing

import (
	"context"
	"fmt"
	"log/slog"

	"threaddit/internal/config"
	"threaddit/internal/reddit"
)

// PageLimit is the fixed page size for every fetch. A single first page is a
// deliberate scope limit; there is no pagination.
const PageLimit = 100

// Context is the browsing position a listing was fetched for.
type Context struct {
	Subreddit string
	Sort      reddit.Sort
}

// Result is one fetch outcome. Rows[0] is the header; Rows[i+1] is the
// projection of Posts[i].
type Result struct {
	Rows      [][]string
	Posts     []reddit.Post
	Subreddit string
	Sort      reddit.Sort
}

// Header is the first tabular row of every result.
func Header() []string {
	return []string{"Score", "Author", "Subreddit", "Title"}
}

// Source is the slice of the Reddit API the gateway consumes.
type Source interface {
	SubredditPosts(ctx context.Context, subreddit string, sort reddit.Sort, limit int) ([]reddit.Post, error)
	PopularSubreddits(ctx context.Context, limit int) ([]reddit.Subreddit, error)
}

// Gateway fetches listings and projects them for display.
type Gateway struct {
	dial func(config.Credentials) (Source, error)
	log  *slog.Logger
}

// NewGateway builds a gateway that opens a real API client per credential set.
func NewGateway(log *slog.Logger) *Gateway {
	return &Gateway{
		dial: func(creds config.Credentials) (Source, error) {
			return reddit.NewClient(creds)
		},
		log: log,
	}
}

// NewGatewayWithSource builds a gateway on a fixed source, bypassing client
// construction. Used by tests.
func NewGatewayWithSource(src Source, log *slog.Logger) *Gateway {
	return &Gateway{
		dial: func(config.Credentials) (Source, error) { return src, nil },
		log:  log,
	}
}

// Fetch retrieves one page of posts for the subreddit under the given sort and
// builds the tabular projection. The sort is validated before anything is
// dialed. The error return means "abort this transition"; the caller keeps
// whatever it was showing.
func (g *Gateway) Fetch(ctx context.Context, creds config.Credentials, subreddit string, sort reddit.Sort) (*Result, error) {
	if _, err := reddit.ParseSort(string(sort)); err != nil {
		return nil, err
	}

	source, err := g.dial(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to open API client: %w", err)
	}

	g.log.Info("fetching subreddit", "subreddit", "r/"+subreddit, "sort", string(sort))
	posts, err := source.SubredditPosts(ctx, subreddit, sort, PageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch r/%s: %w", subreddit, err)
	}
	g.log.Info("subreddit loaded", "subreddit", "r/"+subreddit, "sort", string(sort), "posts", len(posts))

	rows := make([][]string, 0, len(posts)+1)
	rows = append(rows, Header())
	for _, post := range posts {
		rows = append(rows, []string{
			FormatScore(post.Score),
			post.Author,
			DisplaySubreddit(post.Subreddit),
			TruncateTitle(post.Title),
		})
	}

	return &Result{
		Rows:      rows,
		Posts:     posts,
		Subreddit: subreddit,
		Sort:      sort,
	}, nil
}

// Popular returns up to PageLimit popular subreddit display names in their
// "r/<name>" form. The synthetic "r/all" entry is the caller's business.
func (g *Gateway) Popular(ctx context.Context, creds config.Credentials) ([]string, error) {
	source, err := g.dial(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to open API client: %w", err)
	}

	g.log.Info("loading subreddits list")
	subreddits, err := source.PopularSubreddits(ctx, PageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch popular subreddits: %w", err)
	}
	g.log.Info("subreddits list loaded", "count", len(subreddits))

	names := make([]string, 0, len(subreddits))
	for _, sub := range subreddits {
		names = append(names, sub.DisplayNamePrefixed)
	}
	return names, nil
}
