// Package core contains the business logic for the ReadStash API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, ContentElement)
// - content: Conversion between article markup and content elements
// - chunk: Splitting and reassembly of oversized article bodies
// - store: Article persistence over a single JSON blob
// - editor: Element-level editing with optimistic rollback
// - extract: Readability extraction of article content from web pages
// - feedimport: Bulk import of articles from RSS/Atom feeds
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (blob, cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "readstash-api/core/interfaces"
//	    "readstash-api/core/store"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Blob:       myBlobStore,  // implements interfaces.BlobStore
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	articleStore := store.NewArticleStore(deps, store.Config{})
//
//	// Load the collection
//	articles := articleStore.LoadArticles(ctx)
package core
