// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as blob persistence, caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - blob/sqlite: SQLite-backed blob store for the article document
// - blob/redis: Redis-backed blob store using ReJSON
// - blob/memory: In-memory blob store for tests and ephemeral use
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: net/http client with retry logic
// - logger/logrus: Structured logger built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Blob Stores
//
// All blob stores persist a single document and return nil when nothing
// has been written yet:
//
//	store, err := sqlite.NewSQLiteBlobStore("readstash.db")
//	data, err := store.ReadBlob(ctx)
//	err = store.WriteBlob(ctx, data)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("article saved", map[string]interface{}{
//	    "article_id": "123",
//	})
package infrastructure
