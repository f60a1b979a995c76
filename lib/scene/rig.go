package scene

import (
	"math"
	"sync"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/materials"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/store"
)

const (
	LidOpenAngle = math.Pi * 0.6
	lidSpeed     = 2.0
	lidDeadBand  = 0.001
)

// Rig is the view side of a configurator session: it follows the store, keeps the resolved
// appearance of every part and advances the turntable and lid animations frame by frame.
type Rig struct {
	mutex sync.Mutex

	console     consoles.Console
	store       *store.Store
	unsubscribe func()

	active      model.PartCategory
	state       model.ConfigurationState
	appearances [model.PartCount]materials.Appearance

	yaw      float64
	lidAngle float64
	orbit    Orbit

	// OnLid is called when the lid starts opening or closing.
	OnLid func(open bool)
}

func NewRig(s *store.Store, console consoles.Console) *Rig {
	r := &Rig{
		console: console,
		store:   s,
		active:  model.Body,
		orbit:   DefaultOrbit(),
	}

	r.unsubscribe = s.Subscribe(r.onChange)

	r.mutex.Lock()
	r.state = s.Snapshot()
	r.appearances = materials.ResolveAll(r.state)
	r.mutex.Unlock()

	return r
}

func (r *Rig) Close() {
	r.unsubscribe()
}

func (r *Rig) onChange(change store.Change) {
	r.mutex.Lock()

	previous := r.state
	r.state = change.State

	for _, p := range model.AllParts() {
		if !change.TouchesPart(p) {
			continue
		}

		c := change.State.Parts[p]
		r.appearances[p] = materials.Resolve(c)

		if c != previous.Parts[p] {
			r.console.Printf("Part %v changed: %v\n", p, c)
		}
	}

	lidChanged := previous.IsCapOpen != change.State.IsCapOpen
	onLid := r.OnLid

	r.mutex.Unlock()

	if lidChanged {
		if change.State.IsCapOpen {
			r.console.Printf("Lid opening\n")
		} else {
			r.console.Printf("Lid closing\n")
		}
		if onLid != nil {
			onLid(change.State.IsCapOpen)
		}
	}
}

func (r *Rig) ActivePart() model.PartCategory {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.active
}

func (r *Rig) SetActivePart(part model.PartCategory) error {
	if !part.IsValid() {
		return model.ErrInvalidPartCategory
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.active = part
	r.console.Printf("Active component %v using color %v\n", part, r.state.Parts[part].Color)
	return nil
}

func (r *Rig) Appearance(part model.PartCategory) materials.Appearance {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !part.IsValid() {
		return materials.Resolve(model.PartConfig{})
	}
	return r.appearances[part]
}

func (r *Rig) ActiveAppearance() materials.Appearance {
	return r.Appearance(r.ActivePart())
}

// Step advances the animations by one frame of delta seconds.
func (r *Rig) Step(delta float64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.state.IsRotating {
		r.yaw = math.Mod(r.yaw+r.state.RotationSpeed, 2*math.Pi)
	}

	target := 0.0
	if r.state.IsCapOpen {
		target = LidOpenAngle
	}

	angle := lerp(r.lidAngle, target, clamp(delta*lidSpeed, 0, 1))
	if math.Abs(angle-r.lidAngle) > lidDeadBand {
		r.lidAngle = angle
	}
}

func (r *Rig) Yaw() float64 {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.yaw
}

func (r *Rig) LidAngle() float64 {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.lidAngle
}

// OrbitBy moves the camera. Manual orbiting is disabled while the turntable rotates.
func (r *Rig) OrbitBy(azimuth, polar float64) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.state.IsRotating {
		return false
	}

	r.orbit.Rotate(azimuth, polar)
	return true
}

func (r *Rig) Zoom(delta float64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.orbit.Zoom(delta)
}

func (r *Rig) Orbit() Orbit {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.orbit
}
