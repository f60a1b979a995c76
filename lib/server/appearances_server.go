package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/casket/lib/model"
)

type ActiveParams struct {
	Part string `json:"part"`
}

func (s *server) initAppearances(r *gin.Engine) {
	r.GET("/api/appearances", get(s.appearancesList))
	r.GET("/api/appearances/:part", getP[PartParams](s.appearanceGet))
	r.GET("/api/active", get(s.activeGet))
	r.PUT("/api/active", patchP[ActiveParams](s.activePut))
}

func (s *server) appearancesList() (any, error) {
	result := make(map[string]any, model.PartCount)
	for _, p := range model.AllParts() {
		result[p.String()] = s.rig.Appearance(p)
	}

	return result, nil
}

func (s *server) appearanceGet(params *PartParams) (any, error) {
	part, err := model.ParsePartCategory(params.Part)
	if err != nil {
		return nil, err
	}

	return s.rig.Appearance(part), nil
}

func (s *server) activeGet() (any, error) {
	part := s.rig.ActivePart()

	return gin.H{
		"part":       s.toPartConfig(part, s.store.GetPartConfig(part)),
		"appearance": s.rig.Appearance(part),
	}, nil
}

func (s *server) activePut(params *ActiveParams) (any, error) {
	part, err := model.ParsePartCategory(params.Part)
	if err != nil {
		return nil, badRequest("%v", err.Error())
	}

	err = s.rig.SetActivePart(part)
	if err != nil {
		return nil, err
	}

	return s.activeGet()
}
