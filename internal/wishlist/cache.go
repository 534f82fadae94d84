package wishlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oss-wishlist/wishlists/internal/logging"
	"github.com/oss-wishlist/wishlists/pkg/models"
)

// WriteCache persists the cache document at path, replacing any previous
// file. The document is marshaled fully in memory and moved into place via
// a rename, so a failed run never leaves a partial or truncated cache
// behind. Map keys marshal in sorted order, which keeps output stable
// across runs for the same inputs.
func WriteCache(cache models.WishlistCache, path string) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist cache: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary cache file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move cache file into place: %w", err)
	}

	logging.Info("wrote wishlist cache",
		"path", path,
		"size_bytes", len(data),
		"records", cache.Total)
	return nil
}

// LoadCache reads a previously written cache document.
func LoadCache(path string) (*models.WishlistCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file %s: %w", path, err)
	}

	var cache models.WishlistCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", path, err)
	}

	return &cache, nil
}
