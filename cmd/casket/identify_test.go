package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/workspace"
)

func TestIdentifyLoadsNamesFromFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "meshes.txt")
	assert.Nil(t, os.WriteFile(file, []byte("# exported\nLid_Top\n\n  grip_bar  \nbody"), 0o600))

	cmd := &IdentifyCmd{Names: []string{"pillow"}, File: file}

	names, err := cmd.loadNames()
	assert.Nil(t, err)
	assert.Equal(t, []string{"pillow", "Lid_Top", "grip_bar", "body"}, names)
}

func TestIdentifyLogsToTheWorkspaceConsole(t *testing.T) {
	t.Parallel()

	console := consoles.NewMemoryConsole()
	ws, err := workspace.NewWorkspaceWithConsole(":memory:", console)
	assert.Nil(t, err)
	defer ws.Close()

	cmd := &IdentifyCmd{Names: []string{"Lid_Top", "Armature"}, Ignore: []string{"Arm*"}}
	assert.Nil(t, cmd.Run(&context{ws: ws}))

	assert.Contains(t, console.Texts(), "Identified mesh Lid_Top as cap")
}
