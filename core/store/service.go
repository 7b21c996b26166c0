// ABOUTME: Article store owns the durable article collection and the chunk map
// ABOUTME: Splits oversized content into chunks on save and reassembles it on load

package store

import (
	"context"
	"encoding/json"
	"sync"
	"unicode/utf8"

	"readstash-api/core/chunk"
	"readstash-api/core/domain"
	coreerrors "readstash-api/core/errors"
	"readstash-api/core/interfaces"
	"readstash-api/pkg/utils/htmlutil"

	"github.com/google/uuid"
)

// DefaultPreviewLength bounds the preview kept in the content field of a
// chunked article
const DefaultPreviewLength = 500

// Config holds article store tuning
type Config struct {
	// ChunkSize is the maximum content length stored inline
	ChunkSize int

	// PreviewLength bounds the preview retained for chunked content
	PreviewLength int
}

// ArticleStore persists the article collection and the shared chunk map
// through the host's blob persistence capability. Both live under two
// top-level keys of one JSON blob and are always written together.
//
// Mutating operations are serialized through an internal mutex, so two
// concurrent calls cannot silently lose each other's writes within one
// store instance.
type ArticleStore struct {
	deps       interfaces.Dependencies
	chunks     *chunk.Codec
	chunkSize  int
	previewLen int

	mu sync.Mutex
}

// NewArticleStore creates an article store over the given dependencies
func NewArticleStore(deps interfaces.Dependencies, cfg Config) *ArticleStore {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = chunk.DefaultChunkSize
	}
	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = DefaultPreviewLength
	}

	return &ArticleStore{
		deps:       deps,
		chunks:     chunk.NewCodec(deps.Logger),
		chunkSize:  cfg.ChunkSize,
		previewLen: cfg.PreviewLength,
	}
}

// LoadArticles returns every persisted article with its full body content.
// Chunked bodies are reassembled from the chunk map; per-record corruption
// is absorbed with fallback content. A host read fault degrades to an empty
// list rather than an error.
func (s *ArticleStore) LoadArticles(ctx context.Context) []domain.Article {
	articles, _, err := s.load(ctx)
	if err != nil {
		s.logError("Failed to read persisted articles", map[string]interface{}{
			"error": err.Error(),
		})
		return []domain.Article{}
	}
	return articles
}

// SaveArticles persists the full article list, chunking any oversized
// content and rewriting both persisted keys in one save
func (s *ArticleStore) SaveArticles(ctx context.Context, articles []domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, chunks, err := s.load(ctx)
	if err != nil {
		return err
	}

	return s.save(ctx, articles, chunks)
}

// AddArticle saves a new article. When an article with the same URL already
// exists it is replaced in place and keeps its id. Returns the stored record.
func (s *ArticleStore) AddArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if article.URL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	articles, chunks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	replaced := false
	for i := range articles {
		if articles[i].URL == article.URL {
			article.ID = articles[i].ID
			articles[i] = article
			replaced = true
			break
		}
	}
	if !replaced {
		articles = append(articles, article)
	}

	if err := s.save(ctx, articles, chunks); err != nil {
		return nil, err
	}

	s.logInfo("Article saved", map[string]interface{}{
		"id":       article.ID,
		"url":      article.URL,
		"replaced": replaced,
	})

	return &article, nil
}

// UpdateArticle replaces the record with the same id, normalizing its
// content first. Fails with a not-found error when the id is unknown.
func (s *ArticleStore) UpdateArticle(ctx context.Context, article domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, chunks, err := s.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range articles {
		if articles[i].ID == article.ID {
			articles[i] = article
			found = true
			break
		}
	}
	if !found {
		return &coreerrors.NotFoundError{Resource: "article", ID: article.ID}
	}

	return s.save(ctx, articles, chunks)
}

// DeleteArticle removes the record with the given id. Fails with a
// not-found error when the id is unknown.
func (s *ArticleStore) DeleteArticle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, chunks, err := s.load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == len(articles) {
		return &coreerrors.NotFoundError{Resource: "article", ID: id}
	}

	return s.save(ctx, remaining, chunks)
}

// UpdateArticleStatus sets the read/unread state of one article
func (s *ArticleStore) UpdateArticleStatus(ctx context.Context, id string, status domain.ArticleStatus) error {
	if !status.IsValid() {
		return &coreerrors.ValidationError{Field: "status", Message: "status must be read or unread"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	articles, chunks, err := s.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range articles {
		if articles[i].ID == id {
			articles[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return &coreerrors.NotFoundError{Resource: "article", ID: id}
	}

	return s.save(ctx, articles, chunks)
}

// SweepOrphanChunks rewrites the chunk map so it holds only chunks
// referenced by the current article list, reclaiming space leaked by
// deleted or re-chunked articles. Returns the number of entries dropped.
func (s *ArticleStore) SweepOrphanChunks(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, chunks, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	// Saving against an empty carried-forward map re-chunks every
	// oversized body, so the rewritten map holds exactly this save's
	// chunks and nothing else.
	if err := s.save(ctx, articles, map[string]string{}); err != nil {
		return 0, err
	}

	removed := len(chunks)
	if removed > 0 {
		s.logInfo("Swept orphaned content chunks", map[string]interface{}{
			"removed": removed,
		})
	}
	return removed, nil
}

// save chunks oversized content, rebuilds the chunk map from the carried
// forward previous map plus this save's chunks, and writes both persisted
// keys as one blob. Content is normalized (fallback for blank, paragraph
// wrap for markup-less text) before the chunk decision.
func (s *ArticleStore) save(ctx context.Context, articles []domain.Article, prevChunks map[string]string) error {
	chunkMap := make(map[string]string, len(prevChunks))
	for k, v := range prevChunks {
		chunkMap[k] = v
	}

	records := make([]domain.Article, len(articles))
	for i, a := range articles {
		rec := a
		rec.Content = normalizeContent(rec.Content)

		if utf8.RuneCountInString(rec.Content) > s.chunkSize {
			parts := s.chunks.Split(rec.Content, s.chunkSize)
			ids := s.chunks.AssignIDs(rec.ID, parts)
			for j, id := range ids {
				chunkMap[id] = parts[j]
			}
			rec.ContentChunkIDs = ids
			rec.Content = htmlutil.Truncate(htmlutil.Strip(rec.Content), s.previewLen)

			s.logDebug("Chunked article content", map[string]interface{}{
				"id":     rec.ID,
				"chunks": len(ids),
			})
		} else {
			rec.ContentChunkIDs = []string{}
		}

		records[i] = rec
	}

	data, err := json.Marshal(persistedState{
		Articles:      records,
		ContentChunks: chunkMap,
	})
	if err != nil {
		return &coreerrors.StorageError{Op: "encode", Err: err}
	}

	if err := s.deps.Blob.WriteBlob(ctx, data); err != nil {
		return &coreerrors.StorageError{Op: "write", Err: err}
	}

	return nil
}

func (s *ArticleStore) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *ArticleStore) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *ArticleStore) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *ArticleStore) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
