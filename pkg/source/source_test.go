package source

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipdeck/snipdeck/pkg/models"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveShadowing(t *testing.T) {
	project := []models.Command{{Label: "p", Insert: "p"}}
	global := []models.Command{{Label: "g", Insert: "g"}}

	tests := []struct {
		name  string
		stack [][]models.Command
		want  []models.Command
	}{
		{"project shadows global", [][]models.Command{project, global}, project},
		{"empty project falls through", [][]models.Command{nil, global}, global},
		{"all empty", [][]models.Command{nil, nil}, nil},
		{"no layers", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.stack...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshotExplicitFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "cfg.yaml", `
commands:
  - label: Hello
    insert: "hello()"
    group: Greetings
  - label: Bye
    insert: "bye()"
`)

	s, err := Open(cfg, dir)
	require.NoError(t, err)

	cmds := s.Snapshot()
	require.Len(t, cmds, 2)
	assert.Equal(t, "Hello", cmds[0].Label)
	assert.Equal(t, "hello()", cmds[0].Insert)
	assert.Equal(t, "Greetings", cmds[0].Group)
	assert.Equal(t, "flag", s.ActiveScope())
}

func TestSnapshotProjectDiscoveryWalksUp(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep the global scope out of the picture
	root := t.TempDir()
	writeConfig(t, root, ProjectFile, `
commands:
  - label: FromProject
    insert: "x"
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	s, err := Open("", nested)
	require.NoError(t, err)

	cmds := s.Snapshot()
	require.Len(t, cmds, 1)
	assert.Equal(t, "FromProject", cmds[0].Label)
}

func TestSnapshotExplicitShadowsProject(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ProjectFile, `
commands:
  - label: FromProject
    insert: "x"
`)
	cfg := writeConfig(t, dir, "override.yaml", `
commands:
  - label: FromFlag
    insert: "y"
`)

	s, err := Open(cfg, dir)
	require.NoError(t, err)

	cmds := s.Snapshot()
	require.Len(t, cmds, 1)
	assert.Equal(t, "FromFlag", cmds[0].Label, "more specific scope fully shadows")
}

func TestSnapshotFallsBackToBundle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	s, err := Open("", dir)
	require.NoError(t, err)

	cmds := s.Snapshot()
	assert.NotEmpty(t, cmds, "bundle defaults used when every scope is empty")
	assert.Equal(t, "bundle", s.ActiveScope())
}

func TestSnapshotRereadsOnEveryCall(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "cfg.yaml", `
commands:
  - label: Before
    insert: "b"
`)

	s, err := Open(cfg, dir)
	require.NoError(t, err)
	require.Equal(t, "Before", s.Snapshot()[0].Label)

	writeConfig(t, dir, "cfg.yaml", `
commands:
  - label: After
    insert: "a"
`)

	// No watcher involved: Snapshot alone must see the new content.
	assert.Equal(t, "After", s.Snapshot()[0].Label)
}

func TestWatchNotifiesOnChange(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "cfg.yaml", `
commands:
  - label: Before
    insert: "b"
`)

	s, err := Open(cfg, dir)
	require.NoError(t, err)

	var fired atomic.Int32
	s.Watch(func() { fired.Add(1) })

	// Give the watcher a moment to attach before touching the file.
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, dir, "cfg.yaml", `
commands:
  - label: After
    insert: "a"
`)

	assert.Eventually(t, func() bool { return fired.Load() > 0 },
		3*time.Second, 25*time.Millisecond, "change callback should fire")
}

func TestSnapshotEmptyListFallsThrough(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "cfg.yaml", "commands: []\n")
	writeConfig(t, dir, ProjectFile, `
commands:
  - label: FromProject
    insert: "x"
`)

	s, err := Open(cfg, dir)
	require.NoError(t, err)

	cmds := s.Snapshot()
	require.Len(t, cmds, 1)
	assert.Equal(t, "FromProject", cmds[0].Label, "an empty list does not shadow")
}
