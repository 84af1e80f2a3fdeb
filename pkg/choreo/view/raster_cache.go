package view

import "image"

const defaultMaxCacheSize = 16

var icons = newRasterCache(defaultMaxCacheSize)

type rasterCache struct {
	images  map[string]*image.RGBA
	order   []string // tracks insertion order for LRU eviction
	maxSize int
}

func newRasterCache(maxSize int) *rasterCache {
	return &rasterCache{
		images:  make(map[string]*image.RGBA),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *rasterCache) Get(key string) *image.RGBA {
	if img, exists := c.images[key]; exists {
		c.moveToEnd(key)
		return img
	}
	return nil
}

func (c *rasterCache) Set(key string, img *image.RGBA) {
	if _, exists := c.images[key]; exists {
		c.images[key] = img
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.images[key] = img
	c.order = append(c.order, key)
}

func (c *rasterCache) Len() int {
	return len(c.order)
}

func (c *rasterCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *rasterCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.images, oldest)
}

// Purge drops every cached raster.
func (c *rasterCache) Purge() {
	c.images = make(map[string]*image.RGBA)
	c.order = c.order[:0]
}

// PurgeIconCache drops every cached icon raster.
func PurgeIconCache() {
	icons.Purge()
}
