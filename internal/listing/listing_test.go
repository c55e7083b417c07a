package listing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"threaddit/internal/config"
	"threaddit/internal/reddit"
)

type fakeSource struct {
	posts      []reddit.Post
	subreddits []reddit.Subreddit
	err        error

	postCalls    int
	popularCalls int
	lastLimit    int
}

func (f *fakeSource) SubredditPosts(ctx context.Context, subreddit string, sort reddit.Sort, limit int) ([]reddit.Post, error) {
	f.postCalls++
	f.lastLimit = limit
	return f.posts, f.err
}

func (f *fakeSource) PopularSubreddits(ctx context.Context, limit int) ([]reddit.Subreddit, error) {
	f.popularCalls++
	f.lastLimit = limit
	return f.subreddits, f.err
}

func testGateway(src *fakeSource) *Gateway {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGatewayWithSource(src, log)
}

func TestFetchProjection(t *testing.T) {
	src := &fakeSource{
		posts: []reddit.Post{
			{Title: "first", Author: "alice", Subreddit: "golang", Score: 42},
			{Title: strings.Repeat("x", 90), Author: "bob", Subreddit: "news", Score: 1500},
		},
	}
	g := testGateway(src)

	result, err := g.Fetch(context.Background(), config.Credentials{}, "all", reddit.SortHot)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if len(result.Rows) != len(result.Posts)+1 {
		t.Fatalf("Expected %d rows (header + posts), got %d", len(result.Posts)+1, len(result.Rows))
	}
	wantHeader := []string{"Score", "Author", "Subreddit", "Title"}
	for i, col := range wantHeader {
		if result.Rows[0][i] != col {
			t.Errorf("Header[%d] = %q, want %q", i, result.Rows[0][i], col)
		}
	}

	// Rows[i+1] must project Posts[i].
	for i, post := range result.Posts {
		row := result.Rows[i+1]
		if row[0] != FormatScore(post.Score) {
			t.Errorf("Row %d score = %q, want %q", i, row[0], FormatScore(post.Score))
		}
		if row[1] != post.Author {
			t.Errorf("Row %d author = %q, want %q", i, row[1], post.Author)
		}
		if row[2] != "/r/"+post.Subreddit {
			t.Errorf("Row %d subreddit = %q, want /r/%s", i, row[2], post.Subreddit)
		}
		if row[3] != TruncateTitle(post.Title) {
			t.Errorf("Row %d title = %q, want %q", i, row[3], TruncateTitle(post.Title))
		}
	}

	if result.Subreddit != "all" || result.Sort != reddit.SortHot {
		t.Errorf("Result context = (%s, %s), want (all, hot)", result.Subreddit, result.Sort)
	}
	if src.lastLimit != PageLimit {
		t.Errorf("Expected limit %d, got %d", PageLimit, src.lastLimit)
	}
}

func TestFetchRejectsUnknownSortBeforeCalling(t *testing.T) {
	src := &fakeSource{}
	g := testGateway(src)

	_, err := g.Fetch(context.Background(), config.Credentials{}, "all", reddit.Sort("best"))
	if err == nil {
		t.Fatal("Expected error for unknown sort")
	}
	if src.postCalls != 0 {
		t.Errorf("Expected no remote call for unknown sort, got %d", src.postCalls)
	}
}

func TestFetchPropagatesErrors(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	g := testGateway(src)

	result, err := g.Fetch(context.Background(), config.Credentials{}, "all", reddit.SortNew)
	if err == nil {
		t.Fatal("Expected error from failing source")
	}
	if result != nil {
		t.Error("Expected nil result on failure")
	}
}

func TestPopular(t *testing.T) {
	src := &fakeSource{
		subreddits: []reddit.Subreddit{
			{DisplayName: "golang", DisplayNamePrefixed: "r/golang"},
			{DisplayName: "news", DisplayNamePrefixed: "r/news"},
		},
	}
	g := testGateway(src)

	names, err := g.Popular(context.Background(), config.Credentials{})
	if err != nil {
		t.Fatalf("Popular returned error: %v", err)
	}
	if len(names) != 2 || names[0] != "r/golang" || names[1] != "r/news" {
		t.Errorf("Unexpected names: %v", names)
	}
	// The synthetic "r/all" entry belongs to the caller, not the gateway.
	for _, name := range names {
		if name == "r/all" {
			t.Error("Gateway must not prepend r/all")
		}
	}
	if src.lastLimit != PageLimit {
		t.Errorf("Expected limit %d, got %d", PageLimit, src.lastLimit)
	}
}
