package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/unfurl"
	"github.com/google/uuid"
)

// DefaultTTL is how long a cached preview stays fresh. Page metadata changes
// rarely; a stale title for a few hours is an acceptable trade for skipping
// the fetch.
const DefaultTTL = 2 * time.Hour

// Compile-time interface verification.
var _ unfurl.PreviewCache = (*PreviewCache)(nil)

// PreviewCache implements unfurl.PreviewCache using SQLite. Entries expire
// after the configured TTL and are treated as misses (and lazily deleted)
// afterward.
type PreviewCache struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// CacheOption configures a PreviewCache.
type CacheOption func(*PreviewCache)

// WithTTL sets the freshness window for cached previews.
// Defaults to DefaultTTL if not specified.
func WithTTL(d time.Duration) CacheOption {
	return func(c *PreviewCache) {
		c.ttl = d
	}
}

// NewPreviewCache creates a new PreviewCache.
func NewPreviewCache(db *DB, opts ...CacheOption) *PreviewCache {
	c := &PreviewCache{
		db:  db,
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// urlKey computes the xxHash of the URL and returns it as a hex string.
// Hashing keeps the index compact and insensitive to very long URLs.
func urlKey(rawURL string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(rawURL))
	return hex.EncodeToString(b[:])
}

// Get returns the cached preview for the URL, or a miss when the entry is
// absent or older than the TTL.
func (c *PreviewCache) Get(ctx context.Context, rawURL string) (*unfurl.Preview, bool, error) {
	var (
		id, title, description, domain, imageURL, fetchedAt string
	)

	err := c.db.QueryRowContext(ctx, `
		SELECT id, title, description, domain, image_url, fetched_at
		FROM previews
		WHERE url_key = ?
	`, urlKey(rawURL)).Scan(&id, &title, &description, &domain, &imageURL, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	if c.now().Sub(at) > c.ttl {
		_, _ = c.db.ExecContext(ctx, `DELETE FROM previews WHERE id = ?`, id)
		return nil, false, nil
	}

	p := &unfurl.Preview{
		Title:       title,
		Description: description,
		Domain:      domain,
	}
	if imageURL != "" {
		u, err := url.Parse(imageURL)
		if err != nil {
			return nil, false, fmt.Errorf("failed to parse cached image URL: %w", err)
		}
		p.ImageURL = u
	}

	return p, true, nil
}

// Put stores the preview for the URL, replacing any existing entry.
func (c *PreviewCache) Put(ctx context.Context, rawURL string, p *unfurl.Preview) error {
	if p == nil {
		return unfurl.Errorf(unfurl.EINVALID, "preview required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO previews (id, url_key, source_url, title, description, domain, image_url, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url_key) DO UPDATE SET
			source_url = excluded.source_url,
			title = excluded.title,
			description = excluded.description,
			domain = excluded.domain,
			image_url = excluded.image_url,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), urlKey(rawURL), rawURL, p.Title, p.Description, p.Domain,
		p.ImageURLString(), c.now().UTC().Format(time.RFC3339))

	return err
}
