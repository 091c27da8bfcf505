package physics

import (
	"math"
	"testing"
)

// A mass on a spring anchored to an immovable body traces A cos(sqrt(k/m) t).
func TestSpringSinusoid(t *testing.T) {
	const (
		M     = 10.0
		K     = 2.0
		A     = 3.0
		DT    = 1e-6
		STEPS = 1000000
	)
	scene := NewScene()
	mass := scene.AddBody(NewBody(square(), M, Black))
	mass.SetCentroid(Vector{A, 0})
	anchor := scene.AddBody(NewBody(square(), math.Inf(1), Black))
	CreateSpring(scene, K, mass, anchor)

	for i := 0; i < STEPS; i++ {
		want := Vector{A * math.Cos(math.Sqrt(K/M)*float64(i)*DT), 0}
		if !mass.Centroid().Near(want, 1e-6) {
			t.Fatalf("Step %d: expected %v, got %v", i, want, mass.Centroid())
		}
		if !anchor.Centroid().Equal(Zero) {
			t.Fatalf("Step %d: anchor moved to %v", i, anchor.Centroid())
		}
		scene.Tick(DT)
	}
}

func gravityPotential(G float64, body1, body2 *Body) float64 {
	r := body2.Centroid().Sub(body1.Centroid())
	return -G * body1.Mass() * body2.Mass() / r.Length()
}

// Gravity is conservative, so kinetic plus potential energy stays put.
func TestEnergyConservation(t *testing.T) {
	const (
		M1, M2 = 4.5, 7.3
		G      = 1e3
		DT     = 1e-6
		STEPS  = 1000000
	)
	scene := NewScene()
	mass1 := scene.AddBody(NewBody(square(), M1, Black))
	mass2 := scene.AddBody(NewBody(square(), M2, Black))
	mass2.SetCentroid(Vector{10, 20})
	CreateNewtonianGravity(scene, G, mass1, mass2)

	initial := gravityPotential(G, mass1, mass2)
	for i := 0; i < STEPS; i++ {
		if mass1.Centroid().X >= mass2.Centroid().X {
			t.Fatalf("Step %d: bodies passed each other", i)
		}
		energy := gravityPotential(G, mass1, mass2) + mass1.KineticEnergy() + mass2.KineticEnergy()
		if math.Abs(energy/initial-1) > 1e-4 {
			t.Fatalf("Step %d: energy ratio %v", i, energy/initial)
		}
		scene.Tick(DT)
	}
}

func TestGravityClampedAtShortRange(t *testing.T) {
	scene := NewScene()
	a := scene.AddBody(NewBody(square(), 1, Black))
	b := scene.AddBody(NewBody(square(), 1, Black))
	b.SetCentroid(Vector{GravityMinDistance, 0})
	CreateNewtonianGravity(scene, 1e6, a, b)

	scene.Tick(0.1)
	if !a.Velocity().Equal(Zero) || !b.Velocity().Equal(Zero) {
		t.Errorf("Gravity applied inside the minimum distance: %v %v", a.Velocity(), b.Velocity())
	}

	b.SetCentroid(Vector{10, 0})
	scene.Tick(0.1)
	if a.Velocity().X <= 0 || b.Velocity().X >= 0 {
		t.Errorf("Bodies not attracted: %v %v", a.Velocity(), b.Velocity())
	}
	if !a.Velocity().Near(b.Velocity().Neg(), 1e-9) {
		t.Errorf("Forces not equal and opposite: %v %v", a.Velocity(), b.Velocity())
	}
}

func TestDragDecaysVelocity(t *testing.T) {
	const gamma, dt = 0.5, 1e-3
	scene := NewScene()
	body := scene.AddBody(NewBody(square(), 3, Black))
	body.SetVelocity(Vector{4, -2})
	CreateDrag(scene, gamma, body)

	for i := 0; i < 1000; i++ {
		scene.Tick(dt)
	}
	want := Vector{4, -2}.Mult(math.Exp(-gamma * 1))
	if !body.Velocity().Near(want, 1e-3) {
		t.Errorf("Expected velocity near %v, got %v", want, body.Velocity())
	}
}

func TestUniformGravity(t *testing.T) {
	scene := NewScene()
	body := scene.AddBody(NewBody(square(), 2, Black))
	ground := scene.AddBody(NewBody(square(), math.Inf(1), Black))
	CreateUniformGravity(scene, Vector{0, -10}, body)
	CreateUniformGravity(scene, Vector{0, -10}, ground)

	for i := 0; i < 10; i++ {
		scene.Tick(0.1)
	}
	if !body.Velocity().Near(Vector{0, -10}, 1e-9) {
		t.Errorf("Expected velocity 0,-10, got %v", body.Velocity())
	}
	// constant acceleration integrates exactly: -g t^2 / 2
	if !body.Centroid().Near(Vector{0, -5}, 1e-9) {
		t.Errorf("Expected centroid 0,-5, got %v", body.Centroid())
	}
	if !ground.Centroid().Equal(Zero) {
		t.Errorf("Immovable body fell to %v", ground.Centroid())
	}
}

func TestDampedSpringSettles(t *testing.T) {
	scene := NewScene()
	anchor := scene.AddBody(NewBody(square(), math.Inf(1), Black))
	bob := scene.AddBody(NewBody(square(), 1, Black))
	bob.SetCentroid(Vector{8, 0})
	CreateDampedSpring(scene, 20, 4, 5, anchor, bob)

	for i := 0; i < 20000; i++ {
		scene.Tick(1e-3)
	}
	if d := bob.Centroid().Distance(anchor.Centroid()); math.Abs(d-5) > 1e-3 {
		t.Errorf("Expected spring to settle at rest length 5, got %v", d)
	}
	if bob.Velocity().Length() > 1e-3 {
		t.Errorf("Expected bob at rest, got %v", bob.Velocity())
	}
}

func TestFrictionOnlyWhileTouching(t *testing.T) {
	const mu = 0.1
	scene := NewScene()
	puck := scene.AddBody(NewBody(Rectangle(Zero, 1, 1), 2, Black))
	puck.SetVelocity(Vector{1, 0})
	surface := scene.AddBody(NewBody(Rectangle(Vector{0, -0.25}, 10, 0.5), math.Inf(1), Black))
	CreateFrictionSurface(scene, mu, puck, surface)

	// overlapping: every tick scales velocity by (1 - mu)
	scene.Tick(0.01)
	scene.Tick(0.01)
	if !puck.Velocity().Near(Vector{0.81, 0}, 1e-12) {
		t.Errorf("Expected 0.81,0, got %v", puck.Velocity())
	}

	puck.SetCentroid(Vector{0, 5})
	scene.Tick(0.01)
	if !puck.Velocity().Near(Vector{0.81, 0}, 1e-12) {
		t.Errorf("Friction applied without contact: %v", puck.Velocity())
	}
	if !surface.Centroid().Near(Vector{0, -0.25}, 1e-12) {
		t.Errorf("Surface moved to %v", surface.Centroid())
	}
}

func TestInfiniteMassInvariance(t *testing.T) {
	scene := NewScene()
	wall := scene.AddBody(NewBody(Rectangle(Vector{3, 3}, 4, 1), math.Inf(1), Black))
	other := scene.AddBody(NewBody(square(), 5, Black))
	other.SetCentroid(Vector{20, 0})
	other.SetVelocity(Vector{-3, 0.1})

	CreateSpring(scene, 7, wall, other)
	CreateDrag(scene, 0.3, wall)
	CreatePhysicsCollision(scene, other, wall, 1)
	CreateFrictionSurface(scene, 0.5, wall, other)
	scene.AddBodiesForceCreator(func(interface{}) {
		wall.AddForce(Vector{1e6, -1e6})
		wall.AddImpulse(Vector{-42, 17})
	}, nil, wall)

	before := wall.Centroid()
	for i := 0; i < 5000; i++ {
		scene.Tick(1e-3)
		if !wall.Velocity().Equal(Zero) || !wall.Centroid().Equal(before) {
			t.Fatalf("Tick %d: wall moved to %v with velocity %v", i, wall.Centroid(), wall.Velocity())
		}
	}
}
