package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
)

// ErrNotResolvable is returned when a URL cannot be mapped to a channel
var ErrNotResolvable = errors.New("url does not resolve to a channel")

// ChannelInfo is the result of resolving a channel URL
type ChannelInfo struct {
	ChannelID       string // UC...
	UploadsPlaylist string // UU..., derived from the channel ID
	Title           string
}

// Resolver maps channel URLs (including @handle and /c/ vanity forms) to the
// canonical channel ID. Resolution scrapes the public channel page and the
// channel's Atom feed, neither of which is billed against the API quota.
type Resolver struct {
	client  *http.Client
	feeds   *gofeed.Parser
	feedURL string
}

var channelIDRe = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)

// NewResolver creates a new channel resolver
func NewResolver(timeout time.Duration) *Resolver {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Resolver{
		client:  &http.Client{Timeout: timeout},
		feeds:   gofeed.NewParser(),
		feedURL: "https://www.youtube.com/feeds/videos.xml?channel_id=",
	}
}

// ResolveChannel resolves a channel URL to its channel ID, uploads playlist
// and title. Returns ErrNotResolvable for anything that isn't a channel.
func (r *Resolver) ResolveChannel(ctx context.Context, channelURL string) (*ChannelInfo, error) {
	channelURL = strings.TrimSpace(channelURL)
	if channelURL == "" {
		return nil, ErrNotResolvable
	}

	channelID := extractChannelID(channelURL)
	if channelID == "" {
		id, err := r.scrapeChannelID(ctx, channelURL)
		if err != nil {
			return nil, err
		}
		channelID = id
	}

	info := &ChannelInfo{
		ChannelID:       channelID,
		UploadsPlaylist: "UU" + channelID[2:],
	}

	// title comes from the channel's public Atom feed; failure to fetch it
	// is not fatal, the source just keeps an empty title
	if feed, err := r.feeds.ParseURLWithContext(r.feedURL+channelID, ctx); err == nil {
		info.Title = feed.Title
	}

	return info, nil
}

// extractChannelID pulls the channel ID out of a /channel/UC... URL
func extractChannelID(channelURL string) string {
	idx := strings.Index(channelURL, "/channel/")
	if idx < 0 {
		return ""
	}
	id := channelURL[idx+len("/channel/"):]
	if cut := strings.IndexAny(id, "/?#"); cut >= 0 {
		id = id[:cut]
	}
	if channelIDRe.MatchString(id) {
		return id
	}
	return ""
}

// scrapeChannelID fetches the channel page and finds the canonical channel ID
// in its markup. Handle and vanity URLs carry the ID in the canonical link
// and og:url meta tags.
func (r *Resolver) scrapeChannelID(ctx context.Context, channelURL string) (string, error) {
	if !strings.HasPrefix(channelURL, "http://") && !strings.HasPrefix(channelURL, "https://") {
		channelURL = "https://www.youtube.com/" + strings.TrimPrefix(channelURL, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, channelURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotResolvable, channelURL)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch channel page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d for %s", ErrNotResolvable, resp.StatusCode, channelURL)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse channel page: %w", err)
	}

	if id := findChannelID(doc); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("%w: no channel id on page %s", ErrNotResolvable, channelURL)
}

// findChannelID walks the document looking for a /channel/UC... reference in
// canonical links, og:url meta tags or itemprop identifiers
func findChannelID(n *html.Node) string {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "link":
			if attrVal(n, "rel") == "canonical" {
				if id := extractChannelID(attrVal(n, "href")); id != "" {
					return id
				}
			}
		case "meta":
			if attrVal(n, "property") == "og:url" {
				if id := extractChannelID(attrVal(n, "content")); id != "" {
					return id
				}
			}
			if attrVal(n, "itemprop") == "identifier" || attrVal(n, "itemprop") == "channelId" {
				if id := attrVal(n, "content"); channelIDRe.MatchString(id) {
					return id
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if id := findChannelID(c); id != "" {
			return id
		}
	}
	return ""
}

// attrVal returns the value of the named attribute, empty if absent
func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
