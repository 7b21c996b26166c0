// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"readstash-api/core/domain"
)

// ArticleReader lists persisted articles
type ArticleReader interface {
	LoadArticles(ctx context.Context) []domain.Article
}

// ArticleWriter mutates a single persisted article
type ArticleWriter interface {
	UpdateArticle(ctx context.Context, article domain.Article) error
}

// ArticleAdder saves new articles, replacing an existing record with the
// same URL while preserving its id
type ArticleAdder interface {
	AddArticle(ctx context.Context, article domain.Article) (*domain.Article, error)
}

// ArticleService covers the full persisted-article lifecycle
type ArticleService interface {
	ArticleReader
	ArticleWriter
	ArticleAdder
	DeleteArticle(ctx context.Context, id string) error
	UpdateArticleStatus(ctx context.Context, id string, status domain.ArticleStatus) error
	SweepOrphanChunks(ctx context.Context) (int, error)
}

// Extractor produces a complete candidate article record from a web page
type Extractor interface {
	Extract(ctx context.Context, url string) (*domain.Article, error)
}

// FeedImporter saves every entry of a syndication feed as an article,
// returning the number of imported entries
type FeedImporter interface {
	ImportFeed(ctx context.Context, feedURL string) (int, error)
}
