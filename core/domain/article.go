// ABOUTME: Article domain model represents a persisted document with metadata and body content
// ABOUTME: Provides validation and construction helpers for stored articles

package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ArticleStatus indicates whether an article has been read
type ArticleStatus string

const (
	// StatusRead marks an article as read
	StatusRead ArticleStatus = "read"

	// StatusUnread marks an article as unread
	StatusUnread ArticleStatus = "unread"
)

// IsValid checks if the status is one of the known values
func (s ArticleStatus) IsValid() bool {
	return s == StatusRead || s == StatusUnread
}

// Article represents a saved document with its metadata and body content.
//
// Exactly one of Content / ContentChunkIDs is authoritative for the body:
// when ContentChunkIDs is non-empty the Content field only holds a bounded
// preview and the full body lives in the chunk map.
type Article struct {
	// ID is the unique identifier for the article, stable for its lifetime
	ID string `json:"id"`

	// Title is the article's headline
	Title string `json:"title"`

	// URL is the address the article was saved from
	URL string `json:"url"`

	// Domain is the host portion of the URL
	Domain string `json:"domain"`

	// AddedAt is when the article was saved
	AddedAt time.Time `json:"addedAt"`

	// Status is the read/unread state
	Status ArticleStatus `json:"status"`

	// Content is the canonical markup of the document body, or a bounded
	// preview when the body is chunked
	Content string `json:"content"`

	// ContentChunkIDs lists the chunk ids holding the full body, in order.
	// Empty when the body is stored inline.
	ContentChunkIDs []string `json:"contentChunkIds"`

	// Optional metadata
	Excerpt     string     `json:"excerpt,omitempty"`
	Author      string     `json:"author,omitempty"`
	SiteName    string     `json:"siteName,omitempty"`
	Image       string     `json:"image,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// NewArticle creates an Article for the given page with a fresh id
func NewArticle(title, rawURL string) (*Article, error) {
	if rawURL == "" {
		return nil, errors.New("article URL cannot be empty")
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("invalid URL format")
	}

	return &Article{
		ID:              uuid.New().String(),
		Title:           title,
		URL:             rawURL,
		Domain:          parsedURL.Host,
		AddedAt:         time.Now(),
		Status:          StatusUnread,
		ContentChunkIDs: []string{},
	}, nil
}

// IsChunked reports whether the article body is stored as chunks
func (a *Article) IsChunked() bool {
	return len(a.ContentChunkIDs) > 0
}

// IsValid checks if the article has all required fields
func (a *Article) IsValid() bool {
	if a.ID == "" {
		return false
	}

	if a.URL == "" {
		return false
	}

	return true
}
