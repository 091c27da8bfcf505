package physics

// ForceCreator applies forces or impulses once per tick. aux is the payload
// it was registered with.
type ForceCreator func(aux interface{})

type forceEntry struct {
	creator ForceCreator
	aux     interface{}

	// bodies the creator reads or writes; the entry dies with any of them
	bodies []BodyID
}

func (entry *forceEntry) dependsOn(id BodyID) bool {
	for _, dep := range entry.bodies {
		if dep == id {
			return true
		}
	}
	return false
}

func (entry *forceEntry) free() {
	if r, ok := entry.aux.(Releaser); ok {
		r.Release()
	}
}

// Scene owns a list of bodies and the force creators acting on them and
// advances both one timestep at a time.
type Scene struct {
	bodies []*Body
	index  map[BodyID]*Body

	forceCreators []*forceEntry

	detector CollisionDetector

	freed bool
}

func NewScene() *Scene {
	return &Scene{
		bodies:        []*Body{},
		index:         map[BodyID]*Body{},
		forceCreators: []*forceEntry{},
		detector:      FindCollision,
	}
}

func (scene *Scene) AddBody(body *Body) *Body {
	assert(!scene.freed, "Scene has been freed")
	assert(scene.index[body.id] == nil, "Body is already in the scene")

	scene.bodies = append(scene.bodies, body)
	scene.index[body.id] = body
	return body
}

func (scene *Scene) BodyCount() int {
	return len(scene.bodies)
}

// Body returns the body at index i in insertion order.
func (scene *Scene) Body(i int) *Body {
	return scene.bodies[i]
}

// Bodies returns a snapshot of the body list.
func (scene *Scene) Bodies() []*Body {
	return append([]*Body(nil), scene.bodies...)
}

// Lookup resolves a body handle. Bodies purged by Tick are no longer found.
func (scene *Scene) Lookup(id BodyID) (*Body, bool) {
	body, ok := scene.index[id]
	return body, ok
}

// RemoveBody marks the body at index i for removal on the next tick.
func (scene *Scene) RemoveBody(i int) {
	scene.bodies[i].Remove()
}

func (scene *Scene) ForceCreatorCount() int {
	return len(scene.forceCreators)
}

// AddForceCreator registers a creator that depends on no bodies; it lives
// until the scene is freed.
func (scene *Scene) AddForceCreator(creator ForceCreator, aux interface{}) {
	scene.AddBodiesForceCreator(creator, aux)
}

// AddBodiesForceCreator registers a creator that is dropped as soon as any of
// bodies is purged from the scene.
func (scene *Scene) AddBodiesForceCreator(creator ForceCreator, aux interface{}, bodies ...*Body) {
	assert(!scene.freed, "Scene has been freed")
	assert(creator != nil, "Force creator must not be nil")

	ids := make([]BodyID, len(bodies))
	for i, body := range bodies {
		ids[i] = body.id
	}
	scene.forceCreators = append(scene.forceCreators, &forceEntry{
		creator: creator,
		aux:     aux,
		bodies:  ids,
	})
}

func (scene *Scene) SetCollisionDetector(detector CollisionDetector) {
	assert(detector != nil, "Collision detector must not be nil")
	scene.detector = detector
}

// Detect runs the scene's collision detector on a pair of bodies.
func (scene *Scene) Detect(a, b *Body) CollisionInfo {
	return scene.detector(a, b)
}

// CenterBodiesOn shifts every body by the offset that puts body's centroid on
// target. Relative positions are unchanged.
func (scene *Scene) CenterBodiesOn(body *Body, target Vector) {
	shift := target.Sub(body.Centroid())
	for _, b := range scene.bodies {
		b.Polygon().Translate(shift)
	}
}

// Tick runs every force creator against the current state, then integrates
// the surviving bodies and purges the removed ones together with every
// creator that depends on them.
func (scene *Scene) Tick(dt float64) {
	assert(!scene.freed, "Scene has been freed")

	for _, entry := range scene.forceCreators {
		entry.creator(entry.aux)
	}

	live := scene.bodies[:0]
	for _, body := range scene.bodies {
		if !body.IsRemoved() {
			body.integrate(dt)
			live = append(live, body)
			continue
		}
		scene.purgeForceCreators(body.id)
		delete(scene.index, body.id)
		body.free()
	}
	for i := len(live); i < len(scene.bodies); i++ {
		scene.bodies[i] = nil
	}
	scene.bodies = live
}

func (scene *Scene) purgeForceCreators(id BodyID) {
	kept := scene.forceCreators[:0]
	for _, entry := range scene.forceCreators {
		if entry.dependsOn(id) {
			entry.free()
			continue
		}
		kept = append(kept, entry)
	}
	for i := len(kept); i < len(scene.forceCreators); i++ {
		scene.forceCreators[i] = nil
	}
	scene.forceCreators = kept
}

// Free releases every body and force creator the scene owns. The scene must
// not be used afterwards.
func (scene *Scene) Free() {
	if scene.freed {
		return
	}
	scene.freed = true

	for _, entry := range scene.forceCreators {
		entry.free()
	}
	for _, body := range scene.bodies {
		body.free()
	}
	scene.forceCreators = nil
	scene.bodies = nil
	scene.index = nil
}
