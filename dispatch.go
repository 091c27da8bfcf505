package physics

import "math"

// CollisionHandler responds to the start of a contact between body1 and
// body2. axis points from body1 towards body2; aux and forceConst are the
// values the collision was registered with.
type CollisionHandler func(body1, body2 *Body, axis Vector, aux interface{}, forceConst float64)

// CollisionState is the contact state of a registered pair.
type CollisionState int

const (
	// The pair was apart on the last tick. Initial state.
	COLLISION_STATE_SEPARATED CollisionState = iota
	// The pair overlapped on the last tick and its handler has already run.
	COLLISION_STATE_TOUCHING
)

func (state CollisionState) String() string {
	switch state {
	case COLLISION_STATE_SEPARATED:
		return "separated"
	case COLLISION_STATE_TOUCHING:
		return "touching"
	}
	return "unknown"
}

// collisionAux turns the detector's per-tick overlap test into one event
// per contiguous overlap. The caller keeps ownership of aux.
type collisionAux struct {
	forceConst float64
	body1      *Body
	body2      *Body

	begin, separate CollisionHandler
	aux             interface{}

	state CollisionState
	scene *Scene
}

func (col *collisionAux) step() {
	info := col.scene.Detect(col.body1, col.body2)

	switch col.state {
	case COLLISION_STATE_SEPARATED:
		if info.Collided {
			col.state = COLLISION_STATE_TOUCHING
			col.begin(col.body1, col.body2, info.Axis, col.aux, col.forceConst)
		}
	case COLLISION_STATE_TOUCHING:
		if !info.Collided {
			col.state = COLLISION_STATE_SEPARATED
			if col.separate != nil {
				col.separate(col.body1, col.body2, Zero, col.aux, col.forceConst)
			}
		}
	}
}

func collisionForceCreator(aux interface{}) {
	aux.(*collisionAux).step()
}

// CreateCollision calls handler once each time body1 and body2 start to
// overlap. Ticks on which they stay overlapped, and the tick on which they
// separate, call nothing.
func CreateCollision(scene *Scene, body1, body2 *Body, handler CollisionHandler, aux interface{}, forceConst float64) {
	CreateCollisionWithSeparate(scene, body1, body2, handler, nil, aux, forceConst)
}

// CreateCollisionWithSeparate is CreateCollision with a second handler that
// runs once when the pair stops overlapping. separate may be nil and is
// given the zero axis.
func CreateCollisionWithSeparate(scene *Scene, body1, body2 *Body, begin, separate CollisionHandler, aux interface{}, forceConst float64) {
	assert(begin != nil, "Collision handler must not be nil")

	col := &collisionAux{
		forceConst: forceConst,
		body1:      body1,
		body2:      body2,
		begin:      begin,
		separate:   separate,
		aux:        aux,
		state:      COLLISION_STATE_SEPARATED,
		scene:      scene,
	}
	scene.AddBodiesForceCreator(collisionForceCreator, col, body1, body2)
}

// DestructiveCollisionHandler removes both bodies.
func DestructiveCollisionHandler(body1, body2 *Body, axis Vector, aux interface{}, forceConst float64) {
	body1.Remove()
	body2.Remove()
}

// CreateDestructiveCollision removes both bodies when they first touch.
func CreateDestructiveCollision(scene *Scene, body1, body2 *Body) {
	CreateCollision(scene, body1, body2, DestructiveCollisionHandler, nil, 0)
}

// ReducedMass is m1*m2/(m1+m2), or the finite mass when the other is
// infinite.
func ReducedMass(m1, m2 float64) float64 {
	switch {
	case math.IsInf(m1, 1):
		return m2
	case math.IsInf(m2, 1):
		return m1
	case m1+m2 == 0:
		return 0
	}
	return m1 * m2 / (m1 + m2)
}

// PhysicsCollisionHandler exchanges an impulse along axis with forceConst as
// the coefficient of restitution: 1 is perfectly elastic, 0 perfectly
// inelastic.
func PhysicsCollisionHandler(body1, body2 *Body, axis Vector, aux interface{}, forceConst float64) {
	m := ReducedMass(body1.Mass(), body2.Mass())
	vrn := axis.Dot(body2.Velocity().Sub(body1.Velocity()))
	j := m * (1 + forceConst) * vrn

	body1.AddImpulse(axis.Mult(j))
	body2.AddImpulse(axis.Mult(-j))
}

// CreatePhysicsCollision bounces body1 and body2 off each other once per
// contact.
func CreatePhysicsCollision(scene *Scene, body1, body2 *Body, elasticity float64) {
	CreateCollision(scene, body1, body2, PhysicsCollisionHandler, nil, elasticity)
}
