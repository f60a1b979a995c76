package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/storages"
	"github.com/pescuma/casket/lib/storages/orm"
	"github.com/pescuma/casket/lib/store"
	"github.com/pescuma/casket/lib/utils"
)

type Workspace struct {
	console consoles.Console
	storage storages.Storage
}

func NewWorkspace(file string) (*Workspace, error) {
	return NewWorkspaceWithConsole(file, consoles.NewStdOutConsole())
}

func NewWorkspaceWithConsole(file string, console consoles.Console) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.casket"); err == nil {
			file = "./.casket/casket.sqlite"
		} else {
			file = "~/.casket/casket.sqlite"
		}
	}

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(console, file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
	}, nil
}

func createWorkspaceDir(console consoles.Console, file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		console.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

// SaveDesign stores a snapshot of the store under a new design.
func (w *Workspace) SaveDesign(name string, s *store.Store) (*model.Design, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("design name can not be empty")
	}

	designs, err := w.storage.LoadDesigns()
	if err != nil {
		return nil, err
	}

	d := designs.Add(name, s.Snapshot())

	err = w.storage.WriteDesign(d)
	if err != nil {
		designs.Remove(d.ID)
		return nil, err
	}

	w.console.Printf("Saved design '%v' (%v)\n", d.Name, d.ID)

	return d, nil
}

// UpdateDesign overwrites an existing design with the current state of the store.
func (w *Workspace) UpdateDesign(id model.UUID, s *store.Store) (*model.Design, error) {
	d, err := w.GetDesign(id)
	if err != nil {
		return nil, err
	}

	updated := *d
	updated.State = s.Snapshot()

	err = w.storage.WriteDesign(&updated)
	if err != nil {
		return nil, err
	}

	d.State = updated.State
	d.UpdatedAt = updated.UpdatedAt

	return d, nil
}

// LoadDesign restores a saved design into the store.
func (w *Workspace) LoadDesign(id model.UUID, s *store.Store) (*model.Design, error) {
	d, err := w.GetDesign(id)
	if err != nil {
		return nil, err
	}

	err = s.Restore(d.State)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (w *Workspace) GetDesign(id model.UUID) (*model.Design, error) {
	designs, err := w.storage.LoadDesigns()
	if err != nil {
		return nil, err
	}

	d := designs.Get(id)
	if d == nil {
		return nil, errors.Wrapf(model.ErrDesignNotFound, "%v", id)
	}

	return d, nil
}

// ListDesigns returns the designs whose name matches the glob filter. An empty filter matches all.
func (w *Workspace) ListDesigns(filter string) ([]*model.Design, error) {
	filter = strings.TrimSpace(filter)
	if filter != "" && !doublestar.ValidatePattern(filter) {
		return nil, fmt.Errorf("invalid design filter: %v", filter)
	}

	designs, err := w.storage.LoadDesigns()
	if err != nil {
		return nil, err
	}

	return lo.Filter(designs.List(), func(d *model.Design, _ int) bool {
		if filter == "" {
			return true
		}

		m, _ := doublestar.Match(filter, d.Name)
		return m
	}), nil
}

func (w *Workspace) DeleteDesign(id model.UUID) error {
	_, err := w.storage.LoadDesigns()
	if err != nil {
		return err
	}

	return w.storage.DeleteDesign(id)
}

func (w *Workspace) GetConfig(config string) (string, bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return "", false, err
	}

	v, ok := (*cfg)[config]
	return v, ok, nil
}

// SetConfig changes a persistent setting. An empty value removes it.
func (w *Workspace) SetConfig(config string, value string) (bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return false, err
	}

	v, ok := (*cfg)[config]
	if value == "" {
		if !ok {
			return false, nil
		}
		delete(*cfg, config)

	} else {
		if ok && v == value {
			return false, nil
		}
		(*cfg)[config] = value
	}

	err = w.storage.WriteConfig()
	if err != nil {
		return false, err
	}

	return true, nil
}
