package titles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/aocgen-labs/aocgen/internal/platform"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// CacheFileName is the title cache inside the user home directory.
	CacheFileName = "titles.json"

	// DefaultCacheSize is the number of titles kept in memory.
	DefaultCacheSize = 512
)

// CacheFile is the on-disk form of the title cache.
type CacheFile struct {
	Titles    map[string]string `json:"titles"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// LoadCacheFile reads a title cache from path.
// Returns nil, nil if the file does not exist (first run).
func LoadCacheFile(path string) (*CacheFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading title cache: %w", err)
	}

	var cf CacheFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing title cache: %w", err)
	}
	return &cf, nil
}

// SaveCacheFile writes a title cache to path, creating its directory.
func SaveCacheFile(path string, cf *CacheFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling title cache: %w", err)
	}
	if err := platform.ReplaceFile(path, data); err != nil {
		return fmt.Errorf("writing title cache: %w", err)
	}
	return nil
}

func cacheKey(year, day int) string {
	return strconv.Itoa(year) + "/" + strconv.Itoa(day)
}

// Cached remembers titles found by another provider, in memory and
// optionally on disk. Misses are not remembered so a later run can retry.
type Cached struct {
	next Provider
	path string
	mem  *lru.Cache[string, string]

	mu   sync.Mutex
	disk *CacheFile
}

// NewCached wraps next. An empty path keeps the cache in memory only. A
// missing or unreadable cache file starts an empty cache.
func NewCached(next Provider, path string) (*Cached, error) {
	mem, err := lru.New[string, string](DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating title cache: %w", err)
	}

	c := &Cached{next: next, path: path, mem: mem}
	if path == "" {
		return c, nil
	}

	cf, err := LoadCacheFile(path)
	if err != nil || cf == nil {
		cf = &CacheFile{}
	}
	if cf.Titles == nil {
		cf.Titles = make(map[string]string)
	}
	c.disk = cf
	for k, v := range cf.Titles {
		mem.Add(k, v)
	}
	return c, nil
}

// FetchTitle implements Provider.
func (c *Cached) FetchTitle(ctx context.Context, year, day int) (string, bool) {
	key := cacheKey(year, day)
	if title, ok := c.mem.Get(key); ok {
		return title, true
	}

	title, ok := c.next.FetchTitle(ctx, year, day)
	if !ok {
		return "", false
	}
	c.mem.Add(key, title)
	c.persist(key, title)
	return title, true
}

// persist records a title in the cache file. Save errors are ignored; the
// cache only saves network round trips.
func (c *Cached) persist(key, title string) {
	if c.disk == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disk.Titles[key] = title
	c.disk.UpdatedAt = time.Now().UTC()
	_ = SaveCacheFile(c.path, c.disk)
}
