// ABOUTME: Extractor produces complete candidate article records from web pages
// ABOUTME: Uses go-readability for content and a colly metadata scrape as fallback

package extract

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"readstash-api/core/domain"
	coreerrors "readstash-api/core/errors"
	"readstash-api/core/interfaces"
	"readstash-api/pkg/utils/htmlutil"

	readability "github.com/go-shiori/go-readability"
)

const (
	extractTimeout = 30 * time.Second
	excerptLength  = 300
	cacheTTL       = 1 * time.Hour
)

// Service extracts article candidates from URLs
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new extraction service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Extract fetches a page and produces a complete candidate article record
// with canonical markup content and whatever metadata the page exposes.
// Results are cached by URL.
func (s *Service) Extract(ctx context.Context, targetURL string) (*domain.Article, error) {
	if targetURL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	parsedURL, err := url.Parse(targetURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "invalid URL format"}
	}

	if cached := s.cachedArticle(ctx, targetURL); cached != nil {
		return cached, nil
	}

	page, err := readability.FromURL(targetURL, extractTimeout)
	if err != nil {
		s.logError("Failed to extract article", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return nil, coreerrors.WrapError(err, "content extraction failed")
	}

	article, err := domain.NewArticle(page.Title, targetURL)
	if err != nil {
		return nil, err
	}

	article.Content = page.Content
	article.Author = page.Byline
	article.SiteName = page.SiteName
	article.Image = page.Image
	article.PublishedAt = page.PublishedTime

	excerpt := page.Excerpt
	if excerpt == "" {
		excerpt = page.TextContent
	}
	article.Excerpt = htmlutil.Truncate(htmlutil.Strip(excerpt), excerptLength)

	// Readability misses metadata on some pages; fill the gaps from the
	// page's own meta tags
	if article.Image == "" || article.SiteName == "" || article.PublishedAt == nil {
		s.scrapeMetadata(targetURL, article)
	}

	s.cacheArticle(ctx, targetURL, article)

	return article, nil
}

// cachedArticle returns a previously-extracted article for the URL, if any
func (s *Service) cachedArticle(ctx context.Context, targetURL string) *domain.Article {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(targetURL))
	if err != nil || data == nil {
		return nil
	}

	var article domain.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil
	}
	return &article
}

func (s *Service) cacheArticle(ctx context.Context, targetURL string, article *domain.Article) {
	if s.deps.Cache == nil {
		return
	}

	if data, err := json.Marshal(article); err == nil {
		_ = s.deps.Cache.Set(ctx, cacheKey(targetURL), data, cacheTTL)
	}
}

func cacheKey(targetURL string) string {
	return "extract:" + targetURL
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
