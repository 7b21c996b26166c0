// ABOUTME: Persisted record handling for the article store
// ABOUTME: Decodes the raw blob with best-effort recovery of malformed state

package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"readstash-api/core/domain"
	coreerrors "readstash-api/core/errors"
	"readstash-api/pkg/utils/timeutil"

	"github.com/google/uuid"
)

const (
	// FallbackContent replaces missing, wrong-typed or blank content
	FallbackContent = "<p><em>No content available</em></p>"

	// CorruptRecordContent is carried by the minimal record substituted
	// for an article whose persisted form cannot be decoded at all
	CorruptRecordContent = "<p><em>This article could not be loaded</em></p>"
)

// persistedState is the saved shape of the blob: the article list and the
// shared chunk map under two top-level keys
type persistedState struct {
	Articles      []domain.Article  `json:"articles"`
	ContentChunks map[string]string `json:"contentChunks"`
}

// rawPersistedState defers article decoding so malformed records can be
// recovered one at a time
type rawPersistedState struct {
	Articles      json.RawMessage   `json:"articles"`
	ContentChunks map[string]string `json:"contentChunks"`
}

// articleRecord tolerates loosely-typed persisted fields; dates arrive as
// strings and content may be any JSON value in a corrupt blob
type articleRecord struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	URL             string          `json:"url"`
	Domain          string          `json:"domain"`
	AddedAt         string          `json:"addedAt"`
	Status          string          `json:"status"`
	Content         json.RawMessage `json:"content"`
	ContentChunkIDs []string        `json:"contentChunkIds"`
	Excerpt         string          `json:"excerpt"`
	Author          string          `json:"author"`
	SiteName        string          `json:"siteName"`
	Image           string          `json:"image"`
	PublishedAt     string          `json:"publishedAt"`
}

// load reads the blob and decodes both persisted keys. Per-record faults
// are absorbed; only a host read fault is returned as an error.
func (s *ArticleStore) load(ctx context.Context) ([]domain.Article, map[string]string, error) {
	data, err := s.deps.Blob.ReadBlob(ctx)
	if err != nil {
		return nil, nil, &coreerrors.StorageError{Op: "read", Err: err}
	}

	if len(data) == 0 {
		return []domain.Article{}, map[string]string{}, nil
	}

	var state rawPersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logError("Persisted blob is unreadable, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return []domain.Article{}, map[string]string{}, nil
	}

	chunks := state.ContentChunks
	if chunks == nil {
		chunks = map[string]string{}
	}

	raws := s.rawArticleList(state.Articles)
	articles := make([]domain.Article, 0, len(raws))
	for _, raw := range raws {
		articles = append(articles, s.decodeRecord(raw, chunks))
	}

	return articles, chunks, nil
}

// rawArticleList extracts the individual raw records from the articles key.
// An absent key is an empty list; a map-shaped value yields its values in
// key order as a best-effort recovery.
func (s *ArticleStore) rawArticleList(data json.RawMessage) []json.RawMessage {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		return list
	}

	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(data, &byKey); err == nil {
		s.logWarn("Article list is not list-shaped, recovering map values", map[string]interface{}{
			"records": len(byKey),
		})

		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		recovered := make([]json.RawMessage, 0, len(keys))
		for _, k := range keys {
			recovered = append(recovered, byKey[k])
		}
		return recovered
	}

	s.logError("Article list is unreadable, starting empty", nil)
	return nil
}

// decodeRecord turns one raw record into an article, substituting fallbacks
// for whatever cannot be recovered. A record that cannot be decoded at all
// is replaced by a minimal error record rather than dropped.
func (s *ArticleStore) decodeRecord(raw json.RawMessage, chunks map[string]string) domain.Article {
	var rec articleRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logError("Corrupt article record replaced", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.Article{
			ID:              uuid.New().String(),
			Title:           "Unreadable article",
			Status:          domain.StatusUnread,
			AddedAt:         time.Now(),
			Content:         CorruptRecordContent,
			ContentChunkIDs: []string{},
		}
	}

	article := domain.Article{
		ID:       rec.ID,
		Title:    rec.Title,
		URL:      rec.URL,
		Domain:   rec.Domain,
		Status:   domain.StatusUnread,
		Excerpt:  rec.Excerpt,
		Author:   rec.Author,
		SiteName: rec.SiteName,
		Image:    rec.Image,
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if rec.Status == string(domain.StatusRead) {
		article.Status = domain.StatusRead
	}

	article.AddedAt = timeutil.ParseWithNow(rec.AddedAt)
	if published := timeutil.ParseFlexibleTime(rec.PublishedAt); !published.IsZero() {
		article.PublishedAt = &published
	}

	if len(rec.ContentChunkIDs) > 0 {
		article.ContentChunkIDs = rec.ContentChunkIDs
		article.Content = s.chunks.Reassemble(rec.ContentChunkIDs, chunks)
	} else {
		article.ContentChunkIDs = []string{}
		article.Content = s.decodeContent(rec.Content)
	}

	return article
}

// decodeContent validates an inline content value, substituting the
// fallback notice for anything missing, wrong-typed or blank
func (s *ArticleStore) decodeContent(raw json.RawMessage) string {
	var content string
	if len(raw) == 0 || json.Unmarshal(raw, &content) != nil {
		s.logWarn("Article content missing or wrong-typed, using fallback", nil)
		return FallbackContent
	}
	return normalizeContent(content)
}

// normalizeContent applies the content validation rules shared by load and
// save: blank content becomes the fallback notice, markup-less text is
// wrapped in a paragraph
func normalizeContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return FallbackContent
	}
	if !strings.Contains(content, "<") {
		return "<p>" + content + "</p>"
	}
	return content
}
