package physics

import "math"

// Polygon is an ordered vertex list in winding order (either direction) with
// a centroid that is kept in step with every translation and rotation.
type Polygon struct {
	verts []Vector

	velocity      Vector
	rotationSpeed float64
	color         Color

	// cached; moved together with verts, never recomputed
	centroid Vector
}

// NewPolygon copies verts and caches their centroid.
func NewPolygon(verts []Vector, velocity Vector, rotationSpeed float64, color Color) *Polygon {
	poly := &Polygon{
		verts:         append([]Vector(nil), verts...),
		velocity:      velocity,
		rotationSpeed: rotationSpeed,
		color:         color,
	}
	poly.centroid = poly.Centroid()
	return poly
}

func (poly *Polygon) VertexCount() int {
	return len(poly.verts)
}

func (poly *Polygon) Vertex(i int) Vector {
	return poly.verts[i]
}

// Vertices returns a copy of the vertex list.
func (poly *Polygon) Vertices() []Vector {
	return append([]Vector(nil), poly.verts...)
}

func (poly *Polygon) Velocity() Vector {
	return poly.velocity
}

func (poly *Polygon) SetVelocity(v Vector) {
	poly.velocity = v
}

func (poly *Polygon) RotationSpeed() float64 {
	return poly.rotationSpeed
}

func (poly *Polygon) SetRotationSpeed(speed float64) {
	poly.rotationSpeed = speed
}

func (poly *Polygon) Color() Color {
	return poly.color
}

func (poly *Polygon) SetColor(color Color) {
	poly.color = color
}

// Center returns the cached centroid.
func (poly *Polygon) Center() Vector {
	return poly.centroid
}

// SetCenter moves the polygon rigidly so that its centroid lands on c.
func (poly *Polygon) SetCenter(c Vector) {
	poly.Translate(c.Sub(poly.centroid))
}

// Area is the shoelace area, always non-negative.
func (poly *Polygon) Area() float64 {
	var area float64
	count := len(poly.verts)
	for i := 0; i < count; i++ {
		v0 := poly.verts[i]
		v1 := poly.verts[(i+1)%count]
		area += v0.Cross(v1)
	}
	return math.Abs(area) / 2.0
}

// Centroid computes the area-weighted centroid from the vertices. The
// polygon must have non-zero area.
func (poly *Polygon) Centroid() Vector {
	var c Vector
	var signed float64
	count := len(poly.verts)
	for i := 0; i < count; i++ {
		v0 := poly.verts[i]
		v1 := poly.verts[(i+1)%count]
		step := v0.Cross(v1)
		signed += step
		c = c.Add(v0.Add(v1).Mult(step))
	}
	// signed area keeps clockwise and counter-clockwise windings consistent
	return c.Mult(1 / (3.0 * signed))
}

func (poly *Polygon) Translate(delta Vector) {
	for i := range poly.verts {
		poly.verts[i] = poly.verts[i].Add(delta)
	}
	poly.centroid = poly.centroid.Add(delta)
}

// Rotate turns the polygon and its centroid by angle radians about pivot.
func (poly *Polygon) Rotate(angle float64, pivot Vector) {
	for i, v := range poly.verts {
		poly.verts[i] = v.Sub(pivot).Rotate(angle).Add(pivot)
	}
	poly.centroid = poly.centroid.Sub(pivot).Rotate(angle).Add(pivot)
}

// Move translates the polygon by its own velocity over dt.
func (poly *Polygon) Move(dt float64) {
	poly.Translate(poly.velocity.Mult(dt))
}

// Contains reports whether p lies inside the polygon by the even-odd rule.
// Points exactly on an edge may land on either side.
func (poly *Polygon) Contains(p Vector) bool {
	inside := false
	count := len(poly.verts)
	for i, j := 0, count-1; i < count; j, i = i, i+1 {
		a, b := poly.verts[i], poly.verts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func (poly *Polygon) BB() BB {
	return NewBBForPoints(poly.verts)
}

// Rectangle returns the corners of a w by h box centred on center,
// counter-clockwise from the bottom left.
func Rectangle(center Vector, w, h float64) []Vector {
	hw := w / 2.0
	hh := h / 2.0
	bb := NewBBForExtents(center, hw, hh)
	return []Vector{
		{bb.L, bb.B},
		{bb.R, bb.B},
		{bb.R, bb.T},
		{bb.L, bb.T},
	}
}

// RegularPolygon approximates a circle with sides vertices.
func RegularPolygon(center Vector, radius float64, sides int) []Vector {
	assert(sides >= 3, "A polygon needs at least three sides")
	verts := make([]Vector, sides)
	for i := range verts {
		verts[i] = center.Add(ForAngle(2 * math.Pi * float64(i) / float64(sides)).Mult(radius))
	}
	return verts
}

// Star alternates between the outer and inner radius, starting at the top.
func Star(center Vector, outer, inner float64, points int) []Vector {
	assert(points >= 2, "A star needs at least two points")
	verts := make([]Vector, 2*points)
	for i := range verts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + math.Pi*float64(i)/float64(points)
		verts[i] = center.Add(ForAngle(a).Mult(r))
	}
	return verts
}
