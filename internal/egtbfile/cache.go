package egtbfile

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// blockKey identifies one decompressed block within one side of one table
// file, for sharing a single process-wide BlockCache across every open
// File that reads blocks on demand (MemTiny, and MemSmart files large
// enough to behave like MemTiny).
type blockKey struct {
	name  string
	white bool
	block int
}

// BlockCache bounds how many decompressed blocks on-demand files keep
// resident at once, evicting least-recently-used blocks under pressure.
type BlockCache struct {
	cache *lru.Cache[blockKey, []byte]
}

// NewBlockCache builds a cache holding at most capacity decompressed
// blocks.
func NewBlockCache(capacity int) (*BlockCache, error) {
	c, err := lru.New[blockKey, []byte](capacity)
	if err != nil {
		return nil, err
	}
	return &BlockCache{cache: c}, nil
}

func (c *BlockCache) get(name string, white bool, block int) ([]byte, bool) {
	return c.cache.Get(blockKey{name: name, white: white, block: block})
}

func (c *BlockCache) put(name string, white bool, block int, data []byte) {
	c.cache.Add(blockKey{name: name, white: white, block: block}, data)
}
