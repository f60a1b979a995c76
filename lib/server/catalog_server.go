package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/casket/lib/colors"
	"github.com/pescuma/casket/lib/materials"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/scene"
)

type IdentifyParams struct {
	Names []string `json:"names"`
}

func (s *server) initCatalog(r *gin.Engine) {
	r.GET("/api/materials", get(s.materialsList))
	r.GET("/api/presets", get(s.presetsList))
	r.GET("/api/parts", get(s.partsList))
	r.POST("/api/parts/identify", postP[IdentifyParams](s.partsIdentify))
}

func (s *server) materialsList() (any, error) {
	return materials.Catalog(), nil
}

func (s *server) presetsList() (any, error) {
	return colors.Presets(), nil
}

func (s *server) partsList() (any, error) {
	state := s.store.Snapshot()

	return lo.Map(model.AllParts(), func(p model.PartCategory, _ int) gin.H {
		return s.toPartConfig(p, state.Parts[p])
	}), nil
}

func (s *server) partsIdentify(params *IdentifyParams) (any, error) {
	tags := scene.TagAsset(s.console, params.Names)
	lid, _ := scene.FindLid(params.Names)

	return gin.H{
		"lid": lid,
		"tagged": lo.Map(tags.Tagged, func(m scene.TaggedMesh, _ int) gin.H {
			return gin.H{
				"name": m.Name,
				"part": m.Part.String(),
			}
		}),
		"unmatched": lo.Ternary(tags.Unmatched == nil, []string{}, tags.Unmatched),
		"missing": lo.Map(tags.Missing(), func(p model.PartCategory, _ int) string {
			return p.String()
		}),
	}, nil
}
