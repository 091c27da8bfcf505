package physics

import "math"

// GravityMinDistance is the centroid separation at or below which Newtonian
// gravity is not applied.
const GravityMinDistance = 5.0

// bodyAux is the payload shared by the built-in force creators.
type bodyAux struct {
	forceConst float64
	bodies     []*Body
}

func newtonianGravity(aux interface{}) {
	a := aux.(*bodyAux)
	body1, body2 := a.bodies[0], a.bodies[1]

	displacement := body1.Centroid().Sub(body2.Centroid())
	distance := displacement.Length()
	if distance <= GravityMinDistance {
		return
	}

	magnitude := a.forceConst * body1.Mass() * body2.Mass() / displacement.LengthSq()
	force := displacement.Mult(magnitude / distance)

	body2.AddForce(force)
	body1.AddForce(force.Neg())
}

// CreateNewtonianGravity attracts body1 and body2 with G*m1*m2/d^2 along the
// line between their centroids.
func CreateNewtonianGravity(scene *Scene, G float64, body1, body2 *Body) {
	aux := &bodyAux{forceConst: G, bodies: []*Body{body1, body2}}
	scene.AddBodiesForceCreator(newtonianGravity, aux, body1, body2)
}

type fieldAux struct {
	g    Vector
	body *Body
}

func uniformGravity(aux interface{}) {
	a := aux.(*fieldAux)
	m := a.body.Mass()
	if math.IsInf(m, 0) {
		return
	}
	a.body.AddForce(a.g.Mult(m))
}

// CreateUniformGravity pulls body with a constant acceleration g.
func CreateUniformGravity(scene *Scene, g Vector, body *Body) {
	scene.AddBodiesForceCreator(uniformGravity, &fieldAux{g: g, body: body}, body)
}

func springForce(aux interface{}) {
	a := aux.(*bodyAux)
	body1, body2 := a.bodies[0], a.bodies[1]

	force := body1.Centroid().Sub(body2.Centroid()).Mult(-a.forceConst)
	body1.AddForce(force)
	body2.AddForce(force.Neg())
}

// CreateSpring joins two centroids with an undamped spring of constant k and
// zero rest length.
func CreateSpring(scene *Scene, k float64, body1, body2 *Body) {
	aux := &bodyAux{forceConst: k, bodies: []*Body{body1, body2}}
	scene.AddBodiesForceCreator(springForce, aux, body1, body2)
}

type dampedSpringAux struct {
	restLength, stiffness, damping float64
	a, b                           *Body
}

func dampedSpringForce(aux interface{}) {
	spring := aux.(*dampedSpringAux)
	a, b := spring.a, spring.b

	delta := b.Centroid().Sub(a.Centroid())
	dist := delta.Length()
	if dist == 0 {
		return
	}
	n := delta.Mult(1.0 / dist)

	vrn := b.Velocity().Sub(a.Velocity()).Dot(n)
	f := (dist-spring.restLength)*spring.stiffness + vrn*spring.damping

	a.AddForce(n.Mult(f))
	b.AddForce(n.Mult(-f))
}

// CreateDampedSpring joins two centroids with a spring of the given rest
// length whose force is damped by the relative velocity along the spring.
func CreateDampedSpring(scene *Scene, k, damping, restLength float64, body1, body2 *Body) {
	aux := &dampedSpringAux{
		restLength: restLength,
		stiffness:  k,
		damping:    damping,
		a:          body1,
		b:          body2,
	}
	scene.AddBodiesForceCreator(dampedSpringForce, aux, body1, body2)
}

func dragForce(aux interface{}) {
	a := aux.(*bodyAux)
	body := a.bodies[0]
	if math.IsInf(body.Mass(), 0) {
		return
	}
	body.AddForce(body.Velocity().Mult(-a.forceConst * body.Mass()))
}

// CreateDrag slows body with a force of -gamma*m*v.
func CreateDrag(scene *Scene, gamma float64, body *Body) {
	aux := &bodyAux{forceConst: gamma, bodies: []*Body{body}}
	scene.AddBodiesForceCreator(dragForce, aux, body)
}

type frictionAux struct {
	bodyAux
	scene *Scene
}

func frictionSurface(aux interface{}) {
	a := aux.(*frictionAux)
	body, surface := a.bodies[0], a.bodies[1]
	if math.IsInf(body.Mass(), 0) {
		return
	}
	// applied every tick of contact, unlike collision handlers
	if a.scene.Detect(body, surface).Collided {
		body.AddImpulse(body.Velocity().Mult(-a.forceConst * body.Mass()))
	}
}

// CreateFrictionSurface decelerates body with an impulse of -mu*m*v on every
// tick it overlaps surface.
func CreateFrictionSurface(scene *Scene, mu float64, body, surface *Body) {
	aux := &frictionAux{
		bodyAux: bodyAux{forceConst: mu, bodies: []*Body{body, surface}},
		scene:   scene,
	}
	scene.AddBodiesForceCreator(frictionSurface, aux, body, surface)
}
