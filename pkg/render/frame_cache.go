// pkg/render/frame_cache.go
package render

import "go-space-invaders/internal/mask"

// frameCache keeps one value per mask and drops the values of masks that
// were not drawn during the previous frame. Every round builds fresh masks,
// so without eviction the textures of finished rounds would pile up.
type frameCache[V any] struct {
	frame   uint64
	entries map[mask.Mask]*frameEntry[V]
}

type frameEntry[V any] struct {
	value V
	used  uint64
}

func newFrameCache[V any]() *frameCache[V] {
	return &frameCache[V]{entries: make(map[mask.Mask]*frameEntry[V])}
}

func (c *frameCache[V]) get(m mask.Mask) (V, bool) {
	e, ok := c.entries[m]
	if !ok {
		var zero V
		return zero, false
	}
	e.used = c.frame
	return e.value, true
}

func (c *frameCache[V]) put(m mask.Mask, v V) {
	c.entries[m] = &frameEntry[V]{value: v, used: c.frame}
}

// nextFrame starts a new frame, handing evicted values to release.
func (c *frameCache[V]) nextFrame(release func(V)) {
	for m, e := range c.entries {
		if e.used < c.frame {
			release(e.value)
			delete(c.entries, m)
		}
	}
	c.frame++
}

func (c *frameCache[V]) len() int { return len(c.entries) }
