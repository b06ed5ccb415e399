package intersect

import (
	"sort"

	"github.com/echoflaresat/phong/material"
	"github.com/echoflaresat/phong/vectors"
)

// Object is the part of a shape that shading needs once a hit is chosen.
// Objects are compared by identity, so implementations should be pointers.
type Object interface {
	NormalAt(worldPoint vectors.Vec3) vectors.Vec3
	Material() *material.Material
	Inverse() vectors.Mat4
}

// Intersection is a candidate hit at signed distance T along a ray.
type Intersection struct {
	T      float64
	Object Object
}

func New(t float64, object Object) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a set of intersections kept sorted by T, with the hit
// (smallest non-negative T) cached on every mutation.
// It is not safe for concurrent mutation; each ray owns its own set.
type Intersections struct {
	items  []Intersection
	hit    Intersection
	hasHit bool
}

// NewIntersections takes ownership of xs, sorts it ascending by T and
// selects the hit.
// Order among equal T values follows the input order.
func NewIntersections(xs ...Intersection) Intersections {
	set := Intersections{items: xs}
	sortByT(set.items)
	for _, x := range set.items {
		if x.T >= 0 {
			set.hit, set.hasHit = x, true
			break
		}
	}
	return set
}

// Len returns the number of intersections.
func (xs *Intersections) Len() int {
	return len(xs.items)
}

// At returns the intersection at sorted rank i. It panics when i is out of range.
func (xs *Intersections) At(i int) Intersection {
	return xs.items[i]
}

// Hit returns the visible intersection, or false when every T is negative
// or the set is empty. A missing hit means the ray escaped the scene.
func (xs *Intersections) Hit() (Intersection, bool) {
	return xs.hit, xs.hasHit
}

// Extend merges other into xs, keeping the sort order and the cached hit.
func (xs *Intersections) Extend(other Intersections) {
	if len(other.items) == 0 {
		return
	}
	// always merge into a fresh array: copies of xs may share the old one
	merged := make([]Intersection, 0, len(xs.items)+len(other.items))
	merged = append(merged, xs.items...)
	merged = append(merged, other.items...)
	sortByT(merged)
	xs.items = merged

	if other.hasHit && (!xs.hasHit || other.hit.T < xs.hit.T) {
		xs.hit, xs.hasHit = other.hit, true
	}
}

func sortByT(items []Intersection) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].T < items[j].T
	})
}
