package cache

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"
)

const metaSuffix = ".meta.json"

// Clear drops every cached page and leaves Dir empty, recreating it with the
// cache's permissions.
func (c *PageCache) Clear() error {
	if c == nil || strings.TrimSpace(c.Dir) == "" {
		return errors.New("cache dir not configured")
	}
	if err := os.RemoveAll(c.Dir); err != nil {
		return err
	}
	return c.ensureDir()
}

// Purge removes pages saved more than maxAge ago and reports how many went.
// A page whose metadata cannot be read is left alone; Get refetches it.
func (c *PageCache) Purge(maxAge time.Duration) (int, error) {
	if maxAge <= 0 || c == nil || c.Dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(c.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-maxAge)
	removed := 0
	for _, de := range entries {
		key, ok := strings.CutSuffix(de.Name(), metaSuffix)
		if de.IsDir() || !ok {
			continue
		}
		b, err := os.ReadFile(c.metaPath(key))
		if err != nil {
			continue
		}
		var e Entry
		if json.Unmarshal(b, &e) != nil || !e.SavedAt.Before(cutoff) {
			continue
		}
		// Meta first: a body without meta is never served.
		if err := os.Remove(c.metaPath(key)); err != nil {
			continue
		}
		_ = os.Remove(c.bodyPath(key))
		removed++
	}
	return removed, nil
}
