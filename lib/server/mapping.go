package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/casket/lib/model"
)

func (s *server) toState(state model.ConfigurationState) gin.H {
	parts := gin.H{}
	for _, p := range model.AllParts() {
		parts[p.String()] = s.toPartConfig(p, state.Parts[p])
	}

	return gin.H{
		"parts":         parts,
		"isRotating":    state.IsRotating,
		"rotationSpeed": state.RotationSpeed,
		"isCapOpen":     state.IsCapOpen,
	}
}

func (s *server) toPartConfig(part model.PartCategory, config model.PartConfig) gin.H {
	return gin.H{
		"part":     part.String(),
		"name":     part.DisplayName(),
		"color":    config.Color.String(),
		"material": config.Material.String(),
	}
}

func (s *server) toDesign(d *model.Design) gin.H {
	return gin.H{
		"id":        d.ID.String(),
		"name":      d.Name,
		"state":     s.toState(d.State),
		"createdAt": d.CreatedAt,
		"updatedAt": d.UpdatedAt,
	}
}
