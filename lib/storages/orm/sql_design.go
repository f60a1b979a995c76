package orm

import (
	"time"

	"github.com/pkg/errors"

	"github.com/pescuma/casket/lib/model"
)

type sqlDesign struct {
	ID            model.UUID                  `gorm:"primaryKey"`
	Name          string                      `gorm:"index"`
	Parts         map[string]model.PartRecord `gorm:"serializer:json"`
	IsRotating    bool
	RotationSpeed float64
	IsCapOpen     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlDesign(d *model.Design) *sqlDesign {
	r := d.State.ToRecord()

	return &sqlDesign{
		ID:            d.ID,
		Name:          d.Name,
		Parts:         encodeMap(r.Parts),
		IsRotating:    r.IsRotating,
		RotationSpeed: r.RotationSpeed,
		IsCapOpen:     r.IsCapOpen,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (s *sqlDesign) ToModel() (*model.Design, error) {
	state, err := model.ConfigurationStateFromRecord(&model.DesignRecord{
		Parts:         decodeMap(s.Parts),
		IsRotating:    s.IsRotating,
		RotationSpeed: s.RotationSpeed,
		IsCapOpen:     s.IsCapOpen,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid design %v", s.ID)
	}

	id := s.ID
	result := model.NewDesign(&id, s.Name, state)
	result.CreatedAt = s.CreatedAt
	result.UpdatedAt = s.UpdatedAt
	return result, nil
}

func (s *sqlDesign) CacheKey() string {
	return string(s.ID)
}
