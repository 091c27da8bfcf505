package physics

import "math"

// CollisionInfo is the result of a narrow-phase test between two bodies.
// Axis is a unit vector pointing from the first body towards the second and
// is only meaningful when Collided is set.
type CollisionInfo struct {
	Collided bool
	Axis     Vector
}

// CollisionDetector reports whether two bodies overlap. It must not keep
// state between calls.
type CollisionDetector func(a, b *Body) CollisionInfo

// FindCollision is the default detector: a separating axis test over the
// edge normals of two convex polygons, with a bounding box early-out.
func FindCollision(a, b *Body) CollisionInfo {
	return PolyToPoly(a.Polygon(), b.Polygon())
}

// PolyToPoly runs the separating axis test on two convex polygons. Shapes
// that only share an edge or a point are not colliding.
func PolyToPoly(a, b *Polygon) CollisionInfo {
	if !a.BB().Intersects(b.BB()) {
		return CollisionInfo{}
	}

	minOverlap := math.Inf(1)
	var axis Vector
	for _, poly := range [2]*Polygon{a, b} {
		count := len(poly.verts)
		for i := 0; i < count; i++ {
			edge := poly.verts[(i+1)%count].Sub(poly.verts[i])
			n := edge.Perp().Normalize()
			if n.Equal(Zero) {
				continue
			}

			overlap := projectedOverlap(a.verts, b.verts, n)
			if overlap <= 0 {
				return CollisionInfo{}
			}
			if overlap < minOverlap {
				minOverlap = overlap
				axis = n
			}
		}
	}

	if axis.Dot(b.Center().Sub(a.Center())) < 0 {
		axis = axis.Neg()
	}
	return CollisionInfo{Collided: true, Axis: axis}
}

func projectedOverlap(a, b []Vector, n Vector) float64 {
	minA, maxA := project(a, n)
	minB, maxB := project(b, n)
	return math.Min(maxA, maxB) - math.Max(minA, minB)
}

func project(verts []Vector, n Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range verts {
		d := v.Dot(n)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}
