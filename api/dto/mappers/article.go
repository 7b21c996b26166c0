// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"readstash-api/api/dto/responses"
	"readstash-api/core/domain"
)

// ToArticleResponse converts a domain Article to an ArticleResponse DTO
func ToArticleResponse(article *domain.Article) *responses.ArticleResponse {
	if article == nil {
		return nil
	}

	return &responses.ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		URL:         article.URL,
		Domain:      article.Domain,
		AddedAt:     article.AddedAt,
		Status:      string(article.Status),
		Content:     article.Content,
		Excerpt:     article.Excerpt,
		Author:      article.Author,
		SiteName:    article.SiteName,
		Image:       article.Image,
		PublishedAt: article.PublishedAt,
		Chunked:     article.IsChunked(),
	}
}

// ToArticleListResponse converts a slice of domain Articles to a list DTO
func ToArticleListResponse(articles []domain.Article) *responses.ArticleListResponse {
	out := &responses.ArticleListResponse{
		Articles: make([]responses.ArticleResponse, 0, len(articles)),
		Total:    len(articles),
	}

	for i := range articles {
		if resp := ToArticleResponse(&articles[i]); resp != nil {
			out.Articles = append(out.Articles, *resp)
		}
	}

	return out
}
