package dataset

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Cache memoizes loaded tables by absolute path. Entries are keyed on the
// file's modification time and size, so an edited file is reloaded on the next
// lookup instead of being served stale. There is no TTL: the working set is a
// handful of flight exports and a process restart clears everything.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	logger  *slog.Logger
}

type cacheEntry struct {
	table   *Table
	modTime time.Time
	size    int64
}

// NewCache creates an empty dataset cache.
func NewCache(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		logger:  logger,
	}
}

// Load returns the table for path, reading the file only when it is not cached
// or has changed on disk since it was cached.
func (c *Cache) Load(path string) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &LoadError{Path: abs, Err: err}
	}

	c.mu.RLock()
	entry, ok := c.entries[abs]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		return entry.table, nil
	}

	table, err := Load(abs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[abs] = cacheEntry{table: table, modTime: info.ModTime(), size: info.Size()}
	c.mu.Unlock()

	c.logger.Debug("dataset cached",
		slog.String("path", abs),
		slog.Int("rows", table.Rows()),
		slog.Time("mod_time", info.ModTime()))

	return table, nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
