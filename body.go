package physics

import (
	"fmt"
	"math"
	"sync/atomic"
)

// BodyID identifies a body for its whole lifetime. Force creators record the
// bodies they depend on by ID.
type BodyID uint64

var bodyCur atomic.Uint64

// Releaser is implemented by body info and force-creator payloads that hold
// something which must be let go when their owner is freed.
type Releaser interface {
	Release()
}

type Body struct {
	id BodyID

	poly *Polygon

	// mass and it's inverse; +Inf is immovable, 0 is a massless marker
	m     float64
	m_inv float64

	// force and impulse accumulated since the last tick
	f Vector
	j Vector

	// angle (radians)
	a float64

	removed bool
	freed   bool

	info interface{}
}

func (b Body) String() string {
	return fmt.Sprint("Body ", b.id)
}

// NewBody builds a body from a vertex list. The mass must be non-negative;
// use math.Inf(1) for an immovable body.
func NewBody(shape []Vector, mass float64, color Color) *Body {
	return NewBodyWithInfo(shape, mass, color, nil)
}

// NewBodyWithInfo is NewBody with caller data attached. The body owns info:
// if it implements Releaser, Release runs once when the body is freed.
func NewBodyWithInfo(shape []Vector, mass float64, color Color, info interface{}) *Body {
	assert(mass >= 0, "Body's mass must be non-negative")

	body := &Body{
		id:   BodyID(bodyCur.Add(1)),
		poly: NewPolygon(shape, Zero, 0, color),
		info: info,
	}
	body.setMass(mass)
	return body
}

func (body *Body) setMass(mass float64) {
	body.m = mass
	if mass == 0 || math.IsInf(mass, 1) {
		body.m_inv = 0
	} else {
		body.m_inv = 1 / mass
	}
}

func (body *Body) ID() BodyID {
	return body.id
}

func (body *Body) Polygon() *Polygon {
	return body.poly
}

// Shape returns a copy of the body's current vertices.
func (body *Body) Shape() []Vector {
	return body.poly.Vertices()
}

func (body *Body) Info() interface{} {
	return body.info
}

func (body *Body) Mass() float64 {
	return body.m
}

func (body *Body) Centroid() Vector {
	return body.poly.Center()
}

func (body *Body) SetCentroid(c Vector) {
	body.poly.SetCenter(c)
}

func (body *Body) Velocity() Vector {
	return body.poly.Velocity()
}

func (body *Body) SetVelocity(v Vector) {
	body.poly.SetVelocity(v)
}

func (body *Body) Rotation() float64 {
	return body.a
}

// SetRotation turns the polygon about its centroid by the difference between
// angle and the stored rotation.
func (body *Body) SetRotation(angle float64) {
	body.poly.Rotate(angle-body.a, body.Centroid())
	body.a = angle
}

func (body *Body) Color() Color {
	return body.poly.Color()
}

func (body *Body) SetColor(color Color) {
	body.poly.SetColor(color)
}

func (body *Body) BB() BB {
	return body.poly.BB()
}

func (body *Body) Force() Vector {
	return body.f
}

func (body *Body) Impulse() Vector {
	return body.j
}

func (body *Body) AddForce(force Vector) {
	body.f = body.f.Add(force)
}

func (body *Body) AddImpulse(impulse Vector) {
	body.j = body.j.Add(impulse)
}

// Reset drops the accumulated force and impulse without moving the body.
func (body *Body) Reset() {
	body.f = Zero
	body.j = Zero
}

// Remove marks the body for removal. The scene detaches it on its next tick.
func (body *Body) Remove() {
	body.removed = true
}

func (body *Body) IsRemoved() bool {
	return body.removed
}

func (body *Body) KineticEnergy() float64 {
	if math.IsInf(body.m, 0) {
		return 0
	}
	v := body.Velocity()
	return body.m * v.Dot(v) / 2
}

// integrate advances the body by dt from its accumulated force and impulse
// and clears both.
func (body *Body) integrate(dt float64) {
	oldVel := body.Velocity()
	newVel := oldVel
	if body.m_inv != 0 {
		dv := body.f.Mult(dt * body.m_inv).Add(body.j.Mult(body.m_inv))
		newVel = oldVel.Add(dv)
	}
	midVel := oldVel.Add(newVel).Mult(0.5)

	body.poly.Translate(IntegrateSimpson(oldVel, midVel, newVel, dt))
	body.poly.SetVelocity(newVel)
	body.Reset()
}

func (body *Body) free() {
	if body.freed {
		return
	}
	body.freed = true
	if r, ok := body.info.(Releaser); ok {
		r.Release()
	}
}
