package server

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/casket/lib/model"
)

type DesignsListParams struct {
	Name string `form:"name"`
}

type DesignCreateParams struct {
	Name string `json:"name"`
}

func (s *server) initDesigns(r *gin.Engine) {
	r.GET("/api/designs", getP[DesignsListParams](s.designsList))
	r.POST("/api/designs", postP[DesignCreateParams](s.designCreate))
	r.GET("/api/designs/:id", getP[IDParams](s.designGet))
	r.PUT("/api/designs/:id", getP[IDParams](s.designUpdate))
	r.POST("/api/designs/:id/load", getP[IDParams](s.designLoad))
	r.DELETE("/api/designs/:id", getP[IDParams](s.designDelete))
}

func (s *server) designsList(params *DesignsListParams) (any, error) {
	if params.Name != "" && !doublestar.ValidatePattern(params.Name) {
		return nil, badRequest("invalid name filter: %v", params.Name)
	}

	designs, err := s.ws.ListDesigns(params.Name)
	if err != nil {
		return nil, err
	}

	return lo.Map(designs, func(d *model.Design, _ int) gin.H {
		return s.toDesign(d)
	}), nil
}

func (s *server) designCreate(params *DesignCreateParams) (any, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, badRequest("missing design name")
	}

	d, err := s.ws.SaveDesign(params.Name, s.store)
	if err != nil {
		return nil, err
	}

	return s.toDesign(d), nil
}

func (s *server) designGet(params *IDParams) (any, error) {
	d, err := s.ws.GetDesign(model.UUID(params.ID))
	if err != nil {
		return nil, err
	}

	return s.toDesign(d), nil
}

func (s *server) designUpdate(params *IDParams) (any, error) {
	d, err := s.ws.UpdateDesign(model.UUID(params.ID), s.store)
	if err != nil {
		return nil, err
	}

	return s.toDesign(d), nil
}

func (s *server) designLoad(params *IDParams) (any, error) {
	d, err := s.ws.LoadDesign(model.UUID(params.ID), s.store)
	if err != nil {
		return nil, err
	}

	return s.toDesign(d), nil
}

func (s *server) designDelete(params *IDParams) (any, error) {
	err := s.ws.DeleteDesign(model.UUID(params.ID))
	if err != nil {
		return nil, err
	}

	return gin.H{"id": params.ID}, nil
}
