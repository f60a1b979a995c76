package storages

import (
	"github.com/pescuma/casket/lib/model"
)

type Storage interface {
	LoadDesigns() (*model.Designs, error)
	WriteDesigns() error
	WriteDesign(design *model.Design) error
	DeleteDesign(id model.UUID) error

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}
