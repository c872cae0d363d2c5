package canvas

import "github.com/taigrr/cellrender/pkg/math3d"

// PointCache memoises a generated point set. The owner calls Invalidate
// whenever a parameter the points depend on changes; Get regenerates only
// when the cache is dirty. The zero value is an empty, dirty cache.
type PointCache struct {
	points []math3d.Vec2
	valid  bool
}

// Invalidate marks the cached points as stale.
func (c *PointCache) Invalidate() {
	c.valid = false
}

// Valid reports whether the cached points are current.
func (c *PointCache) Valid() bool {
	return c.valid
}

// Get returns the cached points, first calling generate if the cache is
// dirty. generate receives the old slice truncated to zero length so it can
// reuse its storage.
func (c *PointCache) Get(generate func(dst []math3d.Vec2) []math3d.Vec2) []math3d.Vec2 {
	if !c.valid {
		c.points = generate(c.points[:0])
		c.valid = true
	}
	return c.points
}
