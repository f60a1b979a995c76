package store

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/model"
)

// Store owns the ConfigurationState of one configurator session. It is the only writer of that state.
//
// Writes are serialised and observers are called synchronously, in subscription order, before the
// writing call returns. Observers may read the store but must not write to it.
type Store struct {
	writeMutex sync.Mutex
	stateMutex sync.RWMutex

	console consoles.Console
	state   model.ConfigurationState

	observersMutex sync.Mutex
	observers      []*observerEntry
}

type observerEntry struct {
	f Observer
}

func New(console consoles.Console) *Store {
	return &Store{
		console: console,
		state:   model.DefaultConfigurationState(),
	}
}

func (s *Store) GetPartConfig(part model.PartCategory) model.PartConfig {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	return s.state.Part(part)
}

func (s *Store) Snapshot() model.ConfigurationState {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	return s.state
}

func (s *Store) IsRotating() bool {
	return s.Snapshot().IsRotating
}

func (s *Store) RotationSpeed() float64 {
	return s.Snapshot().RotationSpeed
}

func (s *Store) IsCapOpen() bool {
	return s.Snapshot().IsCapOpen
}

func (s *Store) SetPartColor(part model.PartCategory, color string) error {
	if !part.IsValid() {
		return errors.Wrapf(model.ErrInvalidPartCategory, "%v", int(part))
	}

	c, err := model.ParseColor(color)
	if err != nil {
		return err
	}

	s.commit(ChangePartColor, part, func(state *model.ConfigurationState) {
		state.Parts[part].Color = c
	})
	return nil
}

func (s *Store) SetPartMaterial(part model.PartCategory, material model.MaterialKind) error {
	if !part.IsValid() {
		return errors.Wrapf(model.ErrInvalidPartCategory, "%v", int(part))
	}
	if !material.IsValid() {
		return errors.Wrapf(model.ErrInvalidMaterialKind, "%v", int(material))
	}

	s.commit(ChangePartMaterial, part, func(state *model.ConfigurationState) {
		state.Parts[part].Material = material
	})
	return nil
}

// UpdatePart changes the color and the material of a part in a single change. Nil arguments keep the
// current value. Nothing is applied unless both values are valid.
func (s *Store) UpdatePart(part model.PartCategory, color *string, material *model.MaterialKind) error {
	if !part.IsValid() {
		return errors.Wrapf(model.ErrInvalidPartCategory, "%v", int(part))
	}

	var c model.Color
	if color != nil {
		var err error
		c, err = model.ParseColor(*color)
		if err != nil {
			return err
		}
	}
	if material != nil && !material.IsValid() {
		return errors.Wrapf(model.ErrInvalidMaterialKind, "%v", int(*material))
	}

	s.commit(ChangePart, part, func(state *model.ConfigurationState) {
		if color != nil {
			state.Parts[part].Color = c
		}
		if material != nil {
			state.Parts[part].Material = *material
		}
	})
	return nil
}

func (s *Store) ToggleRotation() {
	s.commit(ChangeRotation, 0, func(state *model.ConfigurationState) {
		state.IsRotating = !state.IsRotating
	})
}

func (s *Store) SetRotationSpeed(speed float64) error {
	err := model.ValidateRotationSpeed(speed)
	if err != nil {
		return err
	}

	s.commit(ChangeRotationSpeed, 0, func(state *model.ConfigurationState) {
		state.RotationSpeed = speed
	})
	return nil
}

func (s *Store) SetCapOpen(open bool) {
	s.commit(ChangeCapOpen, 0, func(state *model.ConfigurationState) {
		state.IsCapOpen = open
	})
}

func (s *Store) ToggleCapOpen() {
	s.commit(ChangeCapOpen, 0, func(state *model.ConfigurationState) {
		state.IsCapOpen = !state.IsCapOpen
	})
}

// ResetConfig restores every part and view field to the factory defaults in a single change.
func (s *Store) ResetConfig() {
	s.commit(ChangeReset, 0, func(state *model.ConfigurationState) {
		*state = model.DefaultConfigurationState()
	})

	s.console.Printf("Configuration reset to defaults\n")
}

// Restore replaces the whole state, e.g. when loading a saved design. Nothing changes if any field
// is invalid.
func (s *Store) Restore(state model.ConfigurationState) error {
	c, err := state.Canonical()
	if err != nil {
		return err
	}

	s.commit(ChangeRestore, 0, func(state *model.ConfigurationState) {
		*state = c
	})

	s.console.Printf("Configuration restored\n")
	return nil
}

// Subscribe registers an observer. The returned function removes it.
func (s *Store) Subscribe(f Observer) func() {
	entry := &observerEntry{f: f}

	s.observersMutex.Lock()
	s.observers = append(s.observers, entry)
	s.observersMutex.Unlock()

	return func() {
		s.observersMutex.Lock()
		defer s.observersMutex.Unlock()

		s.observers = lo.Without(s.observers, entry)
	}
}

func (s *Store) commit(kind ChangeKind, part model.PartCategory, mutate func(*model.ConfigurationState)) {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	s.stateMutex.Lock()
	mutate(&s.state)
	snapshot := s.state
	s.stateMutex.Unlock()

	s.notify(Change{
		Kind:  kind,
		Part:  part,
		State: snapshot,
	})
}

func (s *Store) notify(change Change) {
	s.observersMutex.Lock()
	observers := make([]*observerEntry, len(s.observers))
	copy(observers, s.observers)
	s.observersMutex.Unlock()

	for _, o := range observers {
		o.f(change)
	}
}
