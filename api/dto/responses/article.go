// ABOUTME: Response DTOs for article-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// ArticleResponse represents an article in API responses
type ArticleResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Domain      string     `json:"domain"`
	AddedAt     time.Time  `json:"addedAt"`
	Status      string     `json:"status"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Author      string     `json:"author,omitempty"`
	SiteName    string     `json:"siteName,omitempty"`
	Image       string     `json:"image,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Chunked     bool       `json:"chunked"`
}

// ArticleListResponse represents the response for listing articles
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

// ImportFeedResponse represents the result of a feed import
type ImportFeedResponse struct {
	Imported int `json:"imported"`
}

// SweepResponse represents the result of an orphan chunk sweep
type SweepResponse struct {
	Removed int `json:"removed"`
}

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
