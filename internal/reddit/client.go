// Package reddit is a minimal Reddit API client covering the three calls the
// browser needs: verifying the logged-in account, fetching one page of a
// subreddit listing, and fetching the popular-subreddits list. Authentication
// uses the script-app password grant.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"threaddit/internal/config"

	"golang.org/x/oauth2"
)

const (
	tokenURL = "https://www.reddit.com/api/v1/access_token"
	apiBase  = "https://oauth.reddit.com"

	requestTimeout = 30 * time.Second
)

// Client talks to the Reddit API on behalf of one set of credentials.
type Client struct {
	creds config.Credentials
	http  *http.Client
}

// NewClient builds a client for the given credentials. It fails fast when the
// script-app identity is incomplete; no token request is possible without it.
// The first authenticated call acquires a token, which is then reused and
// refreshed transparently.
func NewClient(creds config.Credentials) (*Client, error) {
	if !creds.HasAppIdentity() {
		return nil, fmt.Errorf("missing app identity (user agent, client id or client secret)")
	}
	if !creds.HasLogin() {
		return nil, fmt.Errorf("missing username or password")
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}

	// Reddit rejects token requests without a descriptive User-Agent, so the
	// underlying client used for the grant has to set one too.
	base := &http.Client{
		Timeout:   requestTimeout,
		Transport: userAgentTransport{agent: creds.UserAgent, next: http.DefaultTransport},
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	source := passwordTokenSource{
		ctx:      ctx,
		conf:     conf,
		username: creds.Username,
		password: creds.Password,
	}

	return &Client{
		creds: creds,
		http: &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.ReuseTokenSource(nil, source),
				Base:   userAgentTransport{agent: creds.UserAgent, next: http.DefaultTransport},
			},
		},
	}, nil
}

// Credentials returns the credentials the client was built with.
func (c *Client) Credentials() config.Credentials {
	return c.creds
}

// AboutUser fetches a user's public profile.
func (c *Client) AboutUser(ctx context.Context, username string) (Account, error) {
	var envelope accountEnvelope
	path := fmt.Sprintf("/user/%s/about", url.PathEscape(username))
	if err := c.get(ctx, path, nil, &envelope); err != nil {
		return Account{}, err
	}
	return envelope.Data, nil
}

// SubredditPosts fetches a single page of posts for a subreddit under the
// given sort. The sort is validated before any request is built.
func (c *Client) SubredditPosts(ctx context.Context, subreddit string, sort Sort, limit int) ([]Post, error) {
	sortPath, err := sort.Path()
	if err != nil {
		return nil, err
	}

	var envelope postListing
	path := fmt.Sprintf("/r/%s/%s", url.PathEscape(subreddit), sortPath)
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, path, query, &envelope); err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(envelope.Data.Children))
	for _, child := range envelope.Data.Children {
		posts = append(posts, child.Data)
	}
	return posts, nil
}

// PopularSubreddits fetches a single page of the popular-subreddits listing.
func (c *Client) PopularSubreddits(ctx context.Context, limit int) ([]Subreddit, error) {
	var envelope subredditListing
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/subreddits/popular", query, &envelope); err != nil {
		return nil, err
	}

	subreddits := make([]Subreddit, 0, len(envelope.Data.Children))
	for _, child := range envelope.Data.Children {
		subreddits = append(subreddits, child.Data)
	}
	return subreddits, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint := apiBase + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %s: %s", path, resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// userAgentTransport stamps every outgoing request with the configured agent.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(clone)
}

// passwordTokenSource exchanges the account's username/password for a token
// each time the current one expires.
type passwordTokenSource struct {
	ctx      context.Context
	conf     *oauth2.Config
	username string
	password string
}

func (s passwordTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.conf.PasswordCredentialsToken(s.ctx, s.username, s.password)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	return token, nil
}
