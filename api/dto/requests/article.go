// ABOUTME: Request DTOs for article-related API endpoints
// ABOUTME: Provides validation for incoming requests

package requests

import "errors"

// AddArticleRequest represents the request body for saving an article
type AddArticleRequest struct {
	// Title is the article title; optional when Extract is set
	Title string `json:"title,omitempty"`

	// URL is the canonical address of the article
	URL string `json:"url"`

	// Content is the sanitized article markup; optional
	Content string `json:"content,omitempty"`

	// Extract fetches and extracts the page content when true
	Extract bool `json:"extract,omitempty"`
}

// Validate checks the request for required fields
func (r *AddArticleRequest) Validate() error {
	if r.URL == "" {
		return errors.New("url is required")
	}
	if !r.Extract && r.Title == "" {
		return errors.New("title is required unless extract is set")
	}
	return nil
}

// UpdateArticleRequest represents the request body for updating an article.
// Only non-nil fields are applied.
type UpdateArticleRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Excerpt *string `json:"excerpt,omitempty"`
	Author  *string `json:"author,omitempty"`
}

// UpdateStatusRequest represents the request body for changing read status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the request for required fields
func (r *UpdateStatusRequest) Validate() error {
	if r.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

// ImportFeedRequest represents the request body for importing a feed
type ImportFeedRequest struct {
	URL string `json:"url"`
}

// Validate checks the request for required fields
func (r *ImportFeedRequest) Validate() error {
	if r.URL == "" {
		return errors.New("url is required")
	}
	return nil
}
