package transpile

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/parser"
)

// parseCache is a read-through cache of parse results keyed by statement
// text and source dialect. Concurrent lookups of the same key parse at
// most once; failed parses are not cached.
type parseCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*parser.Result
	group   singleflight.Group
}

type cacheKey struct {
	sql     string
	dialect string
}

func newParseCache() *parseCache {
	return &parseCache{
		entries: make(map[cacheKey]*parser.Result),
	}
}

func (c *parseCache) parse(sql string, src *dialect.Dialect) (*parser.Result, error) {
	key := cacheKey{sql: sql, dialect: src.Name}

	c.mu.RLock()
	res, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return res, nil
	}

	v, err, _ := c.group.Do(sql+"\x00"+src.Name, func() (any, error) {
		res, err := parser.Parse(sql, src)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = res
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*parser.Result), nil
}

// len reports the number of cached parse results.
func (c *parseCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
