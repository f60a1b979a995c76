package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/casket/lib/model"
)

type PartPatchParams struct {
	PartParams
	Color    *string `json:"color"`
	Material *string `json:"material"`
}

type SpeedParams struct {
	Speed *float64 `json:"speed"`
}

type CapParams struct {
	Open *bool `json:"open"`
}

func (s *server) initConfig(r *gin.Engine) {
	r.GET("/api/config", get(s.configGet))
	r.POST("/api/config/reset", post(s.configReset))
	r.GET("/api/config/parts/:part", getP[PartParams](s.partGet))
	r.PATCH("/api/config/parts/:part", patchP[PartPatchParams](s.partPatch))
	r.POST("/api/config/rotation/toggle", post(s.rotationToggle))
	r.PUT("/api/config/rotation/speed", patchP[SpeedParams](s.rotationSpeedPut))
	r.PUT("/api/config/cap", patchP[CapParams](s.capPut))
	r.POST("/api/config/cap/toggle", post(s.capToggle))
}

func (s *server) configGet() (any, error) {
	return s.toState(s.store.Snapshot()), nil
}

func (s *server) configReset() (any, error) {
	s.store.ResetConfig()

	return s.configGet()
}

func (s *server) partGet(params *PartParams) (any, error) {
	part, err := model.ParsePartCategory(params.Part)
	if err != nil {
		return nil, err
	}

	return s.toPartConfig(part, s.store.GetPartConfig(part)), nil
}

func (s *server) partPatch(params *PartPatchParams) (any, error) {
	part, err := model.ParsePartCategory(params.Part)
	if err != nil {
		return nil, err
	}

	if params.Color == nil && params.Material == nil {
		return nil, badRequest("nothing to change in %v", part)
	}

	var material *model.MaterialKind
	if params.Material != nil {
		m, err := model.ParseMaterialKind(*params.Material)
		if err != nil {
			return nil, err
		}

		material = &m
	}

	err = s.store.UpdatePart(part, params.Color, material)
	if err != nil {
		return nil, err
	}

	return s.toPartConfig(part, s.store.GetPartConfig(part)), nil
}

func (s *server) rotationToggle() (any, error) {
	s.store.ToggleRotation()

	return s.configGet()
}

func (s *server) rotationSpeedPut(params *SpeedParams) (any, error) {
	if params.Speed == nil {
		return nil, badRequest("missing speed")
	}

	err := s.store.SetRotationSpeed(*params.Speed)
	if err != nil {
		return nil, err
	}

	return s.configGet()
}

func (s *server) capPut(params *CapParams) (any, error) {
	if params.Open == nil {
		return nil, badRequest("missing open")
	}

	s.store.SetCapOpen(*params.Open)

	return s.configGet()
}

func (s *server) capToggle() (any, error) {
	s.store.ToggleCapOpen()

	return s.configGet()
}
