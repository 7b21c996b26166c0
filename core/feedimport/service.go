// ABOUTME: Feed import service turns RSS/Atom feed entries into saved article stubs
// ABOUTME: Fetches the feed document over HTTP and parses it with gofeed

package feedimport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"

	"readstash-api/core/domain"
	"readstash-api/core/interfaces"
	"readstash-api/pkg/utils/htmlutil"

	"github.com/mmcdole/gofeed"
)

const excerptLength = 300

// Service imports feed entries as unread articles
type Service struct {
	store interfaces.ArticleAdder
	deps  interfaces.Dependencies
}

// NewService creates a new feed import service
func NewService(store interfaces.ArticleAdder, deps interfaces.Dependencies) *Service {
	return &Service{
		store: store,
		deps:  deps,
	}
}

// ImportFeed fetches and parses a feed, saving one article stub per entry.
// Entries whose URL is already saved are replaced through the store's
// replace-by-URL rule. Returns the number of entries saved.
func (s *Service) ImportFeed(ctx context.Context, feedURL string) (int, error) {
	if feedURL == "" {
		return 0, errors.New("feed URL cannot be empty")
	}

	parsedURL, err := url.Parse(feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return 0, errors.New("invalid URL format")
	}

	if s.deps.HTTPClient == nil {
		return 0, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return 0, errors.New("feed returned non-200 status code")
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return 0, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range feed.Items {
		article, ok := s.articleFromItem(feed, item)
		if !ok {
			continue
		}

		if _, err := s.store.AddArticle(ctx, *article); err != nil {
			s.logWarn("Feed entry not saved", map[string]interface{}{
				"url":   article.URL,
				"error": err.Error(),
			})
			continue
		}
		added++
	}

	s.logInfo("Feed imported", map[string]interface{}{
		"feed":  feedURL,
		"added": added,
		"total": len(feed.Items),
	})

	return added, nil
}

// articleFromItem builds an unread article stub from one feed entry
func (s *Service) articleFromItem(feed *gofeed.Feed, item *gofeed.Item) (*domain.Article, bool) {
	if item.Link == "" {
		return nil, false
	}

	article, err := domain.NewArticle(item.Title, item.Link)
	if err != nil {
		return nil, false
	}

	content := item.Content
	if content == "" {
		content = item.Description
	}
	article.Content = content
	article.Excerpt = htmlutil.Truncate(htmlutil.Strip(item.Description), excerptLength)
	article.SiteName = feed.Title

	if item.PublishedParsed != nil {
		article.PublishedAt = item.PublishedParsed
	}
	if item.Author != nil {
		article.Author = item.Author.Name
	}
	if item.Image != nil {
		article.Image = item.Image.URL
	}

	return article, true
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
