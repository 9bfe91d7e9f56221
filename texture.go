package easel

import "fmt"

// TextureLoader is the part of a backend the cache needs.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
	ReleaseTexture(t Texture)
}

// TextureCache maps resource paths to loaded textures. Each distinct path is
// loaded at most once; entries are never evicted before Close. Keys are the
// exact strings callers pass, so "a/b.png" and "./a/b.png" are two entries.
//
// TextureCache is not safe for concurrent use. It is meant to be used from the
// frame loop only.
type TextureCache struct {
	loader  TextureLoader
	entries map[string]Texture
	closed  bool
}

// NewTextureCache creates an empty cache backed by loader.
func NewTextureCache(loader TextureLoader) *TextureCache {
	return &TextureCache{
		loader:  loader,
		entries: make(map[string]Texture),
	}
}

// Load returns the texture for path, loading it on first use. A failed load
// stores nothing, so a later call retries.
func (c *TextureCache) Load(path string) (Texture, error) {
	if c.closed {
		return nil, fmt.Errorf("%w: %s: texture cache is closed", ErrResourceLoad, path)
	}
	if tex, ok := c.entries[path]; ok {
		return tex, nil
	}
	tex, err := c.loader.LoadTexture(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceLoad, path, err)
	}
	if tex == nil {
		return nil, fmt.Errorf("%w: %s: verify that the path is correct and the image exists", ErrResourceLoad, path)
	}
	if w, h := tex.Size(); w <= 0 || h <= 0 {
		c.loader.ReleaseTexture(tex)
		return nil, fmt.Errorf("%w: %s: image has no pixels", ErrResourceLoad, path)
	}
	c.entries[path] = tex
	return tex, nil
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.entries)
}

// Close releases every cached texture exactly once. Calling Close again is a
// no-op.
func (c *TextureCache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for path, tex := range c.entries {
		c.loader.ReleaseTexture(tex)
		delete(c.entries, path)
	}
}
