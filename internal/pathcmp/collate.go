package pathcmp

import (
	"bytes"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// keyCacheSize bounds the number of segment collation keys kept in memory.
// Sorting revisits the same segments many times, so most lookups hit.
const keyCacheSize = 4096

// collator computes collation keys for the CLDR root collation. A Collator
// is not safe for concurrent use, hence the mutex.
type collator struct {
	mu    sync.Mutex
	c     *collate.Collator
	buf   collate.Buffer
	cache *lru.Cache[string, []byte]
}

var rootCollator = newCollator()

func newCollator() *collator {
	cache, err := lru.New[string, []byte](keyCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &collator{
		c:     collate.New(language.Und),
		cache: cache,
	}
}

func (c *collator) key(s string) []byte {
	if k, ok := c.cache.Get(s); ok {
		return k
	}

	c.mu.Lock()
	k := bytes.Clone(c.c.KeyFromString(&c.buf, s))
	c.buf.Reset()
	c.mu.Unlock()

	c.cache.Add(s, k)
	return k
}

// compare orders a and b by collation key, breaking ties between distinct
// strings by byte order so the result is a total order.
func (c *collator) compare(a, b string) int {
	if r := bytes.Compare(c.key(a), c.key(b)); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}
