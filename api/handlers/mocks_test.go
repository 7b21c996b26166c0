package handlers

import (
	"context"

	"readstash-api/core/domain"
	coreerrors "readstash-api/core/errors"
)

// mockArticleService is an in-memory ArticleService for handler tests
type mockArticleService struct {
	articles  []domain.Article
	addErr    error
	updateErr error
	swept     int
	sweepErr  error
}

func (m *mockArticleService) LoadArticles(ctx context.Context) []domain.Article {
	return append([]domain.Article(nil), m.articles...)
}

func (m *mockArticleService) AddArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	m.articles = append(m.articles, article)
	saved := article
	return &saved, nil
}

func (m *mockArticleService) UpdateArticle(ctx context.Context, article domain.Article) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.articles {
		if m.articles[i].ID == article.ID {
			m.articles[i] = article
			return nil
		}
	}
	return &coreerrors.NotFoundError{Resource: "article", ID: article.ID}
}

func (m *mockArticleService) DeleteArticle(ctx context.Context, id string) error {
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return nil
		}
	}
	return &coreerrors.NotFoundError{Resource: "article", ID: id}
}

func (m *mockArticleService) UpdateArticleStatus(ctx context.Context, id string, status domain.ArticleStatus) error {
	if !status.IsValid() {
		return &coreerrors.ValidationError{Field: "status", Message: "invalid status"}
	}
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles[i].Status = status
			return nil
		}
	}
	return &coreerrors.NotFoundError{Resource: "article", ID: id}
}

func (m *mockArticleService) SweepOrphanChunks(ctx context.Context) (int, error) {
	if m.sweepErr != nil {
		return 0, m.sweepErr
	}
	return m.swept, nil
}

// mockExtractor returns a canned article or error
type mockExtractor struct {
	article *domain.Article
	err     error
	calls   []string
}

func (m *mockExtractor) Extract(ctx context.Context, url string) (*domain.Article, error) {
	m.calls = append(m.calls, url)
	if m.err != nil {
		return nil, m.err
	}
	return m.article, nil
}

// mockImporter records import calls
type mockImporter struct {
	imported int
	err      error
	calls    []string
}

func (m *mockImporter) ImportFeed(ctx context.Context, feedURL string) (int, error) {
	m.calls = append(m.calls, feedURL)
	if m.err != nil {
		return 0, m.err
	}
	return m.imported, nil
}
