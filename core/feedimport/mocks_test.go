package feedimport

import (
	"context"
	"io"
	"strings"

	"readstash-api/core/domain"
	"readstash-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockAdder records added articles and optionally fails
type mockAdder struct {
	addErr error
	added  []domain.Article
}

func (m *mockAdder) AddArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	m.added = append(m.added, article)
	return &article, nil
}
