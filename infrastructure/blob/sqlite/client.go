// ABOUTME: SQLite-based blob store for persistent article data
// ABOUTME: Keeps the entire persisted blob in one row so reads and writes stay atomic

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Client implements the BlobStore interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteBlobStore creates a new SQLite blob store
func NewSQLiteBlobStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "readstash.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the blob table if it doesn't exist. The single-row
// constraint keeps the whole persisted state under one key.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS plugin_data (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`

	_, err := c.db.Exec(query)
	return err
}

// ReadBlob returns the persisted blob, or nil when nothing has been saved
func (c *Client) ReadBlob(ctx context.Context) ([]byte, error) {
	var data []byte

	query := "SELECT data FROM plugin_data WHERE id = 1"
	err := c.db.QueryRowContext(ctx, query).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	return data, nil
}

// WriteBlob replaces the persisted blob
func (c *Client) WriteBlob(ctx context.Context, data []byte) error {
	query := `
		INSERT OR REPLACE INTO plugin_data (id, data, updated_at)
		VALUES (1, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
