package providers

import (
	"nellis/internal/structures"
	"strconv"
	"strings"

	"github.com/coocood/freecache"
)

// CacheProviderInterface holds rendered page output keyed by RenderCacheKey.
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// RenderCacheKey identifies one rendering of a page. The collection version
// is part of the key, so a mutation leaves older renders unreachable; the ttl
// only bounds how long they occupy memory. The query is kept as typed because
// it is echoed in the JSON output.
func RenderCacheKey(format, page string, version uint64, query string) string {
	return format + ":" + page + ":" + strconv.FormatUint(version, 10) + ":" + strings.TrimSpace(query)
}

type RenderCache struct {
	tables *freecache.Cache
	ttl    int
	logger Logger
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Render cache disabled, pages are rendered on every list")
		return &noopCache{}
	}

	// freecache expires in whole seconds
	ttl := max(int(conf.Cache.TTL.Seconds()), 1)
	logger.Infof(TypeApp, "Render cache: %dMB for page tables, entries expire after %ds", conf.Cache.Size, ttl)

	return &RenderCache{
		tables: freecache.NewCache(conf.Cache.Size * 1024 * 1024),
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RenderCache) Get(key string) ([]byte, bool) {
	table, err := c.tables.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return table, true
}

// Set stores a rendered table. A table too large for a cache segment is
// skipped; the page is then simply rendered again next time.
func (c *RenderCache) Set(key string, value []byte) {
	if err := c.tables.Set([]byte(key), value, c.ttl); err != nil {
		c.logger.Warnf(TypeApp, "render cache: %s not stored (%d bytes): %s", key, len(value), err)
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
