package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/scene"
	"github.com/pescuma/casket/lib/store"
	"github.com/pescuma/casket/lib/workspace"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, ws *workspace.Workspace, st *store.Store, opts *Options) error {
	s := newServer(console, ws, st, opts)
	defer s.close()

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}

type server struct {
	opts *Options

	console consoles.Console
	ws      *workspace.Workspace
	store   *store.Store
	rig     *scene.Rig
}

func newServer(console consoles.Console, ws *workspace.Workspace, st *store.Store, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2724
	}

	return &server{
		opts:    opts,
		console: console,
		ws:      ws,
		store:   st,
		rig:     scene.NewRig(st, console),
	}
}

func (s *server) close() {
	s.rig.Close()
}

func (s *server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	s.initConfig(r)
	s.initAppearances(r)
	s.initCatalog(r)
	s.initDesigns(r)

	return r
}
