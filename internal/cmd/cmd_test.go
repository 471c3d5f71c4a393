package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amity-space/amity/internal/amity"
	"github.com/amity-space/amity/internal/config"
)

// withSession installs a fresh seeded session and captures command output.
func withSession(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()

	prevApp := app
	t.Cleanup(func() {
		app = prevApp
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	cfg := config.DefaultConfig()
	cfg.Seed = 42
	cfg.LoadFile = filepath.Join(t.TempDir(), "missing.txt")
	app = newSession(cfg, zap.NewNop(), false)

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return stdout, stderr
}

func TestSplitPersonArgs(t *testing.T) {
	tests := []struct {
		args          []string
		name, role, y string
		wantErr       bool
	}{
		{args: []string{"Ama", "Johnson", "staff"}, name: "Ama Johnson", role: "staff", y: "N"},
		{args: []string{"Kofi", "Mensah", "fellow", "Y"}, name: "Kofi Mensah", role: "fellow", y: "Y"},
		{args: []string{"Kofi", "Ama", "Mensah", "fellow", "n"}, name: "Kofi Ama Mensah", role: "fellow", y: "n"},
		{args: []string{"Cher", "fellow"}, name: "Cher", role: "fellow", y: "N"},
		{args: []string{"staff"}, wantErr: true},
	}

	for _, tt := range tests {
		name, role, y, err := splitPersonArgs(tt.args)
		if tt.wantErr {
			assert.Error(t, err, tt.args)
			continue
		}
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.name, name)
		assert.Equal(t, tt.role, role)
		assert.Equal(t, tt.y, y)
	}
}

func TestDispatch_CreateAndAdd(t *testing.T) {
	stdout, _ := withSession(t)

	require.NoError(t, dispatch("create_room office Blue"))
	assert.Contains(t, stdout.String(), "Room(s) Blue created successfully")

	require.NoError(t, dispatch("create_room living Oak"))
	require.NoError(t, dispatch("add_person Kofi Mensah fellow Y"))

	p, err := app.reg.Person("Kofi Mensah")
	require.NoError(t, err)
	assert.Equal(t, "Blue", p.OfficeRoom)
	assert.Equal(t, "Oak", p.LivingRoom)
}

func TestDispatch_QuotedRoomName(t *testing.T) {
	stdout, _ := withSession(t)

	require.NoError(t, dispatch(`create_room living "palm court"`))
	assert.Contains(t, stdout.String(), "Palm Court")

	_, err := app.reg.Room("Palm Court")
	assert.NoError(t, err)
}

func TestDispatch_Errors(t *testing.T) {
	withSession(t)

	err := dispatch("add_person Ama Johnson staff Y")
	assert.True(t, amity.IsKind(err, amity.KindPermission), "got %v", err)

	err = dispatch("create_room garage Blue")
	assert.True(t, amity.IsKind(err, amity.KindValidation), "got %v", err)

	err = dispatch("print_room Nowhere")
	assert.True(t, amity.IsKind(err, amity.KindNotFound), "got %v", err)

	assert.Error(t, dispatch("no_such_command"))
	assert.Error(t, dispatch("create_room office"))
	assert.Error(t, dispatch(`create_room office "unterminated`))
}

func TestDispatch_QuitAndBlank(t *testing.T) {
	withSession(t)

	assert.ErrorIs(t, dispatch("quit"), errQuit)
	assert.ErrorIs(t, dispatch("exit"), errQuit)
	assert.NoError(t, dispatch("   "))
}

func TestDispatch_RejectsNestedSession(t *testing.T) {
	withSession(t)

	assert.Error(t, dispatch("shell"))
	assert.Error(t, dispatch("run other.amity"))
}

func TestDispatch_FlagsDoNotLeak(t *testing.T) {
	withSession(t)

	require.NoError(t, dispatch("create_room office Blue Red"))
	require.NoError(t, dispatch("add_person Ama Johnson staff"))

	// Ama holds one of the two offices; --random moves her to the other.
	before, err := app.reg.Person("Ama Johnson")
	require.NoError(t, err)
	require.NoError(t, dispatch("reallocate_person --random \"Ama Johnson\" office"))

	after, err := app.reg.Person("Ama Johnson")
	require.NoError(t, err)
	assert.NotEqual(t, before.OfficeRoom, after.OfficeRoom)
	assert.False(t, reallocateRandom)

	// Without the flag the second argument is a room name again.
	require.NoError(t, dispatch("reallocate_person \"Ama Johnson\" "+before.OfficeRoom))
	after, err = app.reg.Person("Ama Johnson")
	require.NoError(t, err)
	assert.Equal(t, before.OfficeRoom, after.OfficeRoom)
}

func TestDispatch_Help(t *testing.T) {
	stdout, _ := withSession(t)

	require.NoError(t, dispatch("help"))
	assert.Contains(t, stdout.String(), "create_room")

	stdout.Reset()
	require.NoError(t, dispatch("add_person --help"))
	assert.Contains(t, stdout.String(), "add_person <first_name>")
}

func TestReports(t *testing.T) {
	stdout, _ := withSession(t)

	require.NoError(t, dispatch("create_room office Blue"))
	require.NoError(t, dispatch("add_person Ama Johnson staff"))
	require.NoError(t, dispatch("add_person Kofi Mensah fellow Y"))
	stdout.Reset()

	out := filepath.Join(t.TempDir(), "allocations.txt")
	require.NoError(t, dispatch("print_allocations -o "+out))
	assert.Contains(t, stdout.String(), "Ama Johnson, Kofi Mensah")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Blue (office)")

	stdout.Reset()
	require.NoError(t, dispatch("print_unallocated"))
	assert.Contains(t, stdout.String(), "UNALLOCATED LIVING SPACE")
	assert.Contains(t, stdout.String(), "Kofi Mensah FELLOW")

	stdout.Reset()
	require.NoError(t, dispatch("print_room blue"))
	assert.Contains(t, stdout.String(), "Ama Johnson, Kofi Mensah")

	stdout.Reset()
	require.NoError(t, dispatch("print_available"))
	assert.Contains(t, stdout.String(), "4/6 free")
}

func TestLoadPeople(t *testing.T) {
	stdout, stderr := withSession(t)

	path := filepath.Join(t.TempDir(), "load.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"OLUWAFEMI SULE FELLOW Y",
		"DOMINIC WALTERS STAFF",
		"LEIGH RILEY STAFF Y",
		"",
	}, "\n")), 0o644))

	require.NoError(t, dispatch("create_room office Blue"))
	require.NoError(t, dispatch("load_people "+path))

	out := stdout.String()
	assert.Contains(t, out, "Loaded 2 people")
	assert.Contains(t, out, "(1 failed)")
	assert.Empty(t, stderr.String())
	assert.Len(t, app.reg.People(), 2)

	// The configured default file is used when no path is given.
	err := dispatch("load_people")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAllocatePending(t *testing.T) {
	stdout, _ := withSession(t)

	require.NoError(t, dispatch("add_person Ama Johnson staff"))
	require.NoError(t, dispatch("create_room office Blue"))
	stdout.Reset()

	require.NoError(t, dispatch("allocate_pending"))
	assert.Contains(t, stdout.String(), "Blue")

	stdout.Reset()
	require.NoError(t, dispatch("allocate_pending"))
	assert.Contains(t, stdout.String(), "Everyone is allocated.")
}

func TestRunShell(t *testing.T) {
	stdout, stderr := withSession(t)

	rootCmd.SetIn(strings.NewReader(strings.Join([]string{
		"create_room office Blue",
		"add_person Ama Johnson staff Y",
		"add_person Ama Johnson staff",
		"quit",
		"create_room office Red",
	}, "\n")))

	require.NoError(t, runShell(shellCmd, nil))

	// No prompt when input is not a terminal.
	assert.NotContains(t, stdout.String(), app.cfg.Prompt)
	assert.Contains(t, stderr.String(), "staff cannot")
	assert.Len(t, app.reg.People(), 1)

	// Input after quit is never read.
	_, err := app.reg.Room("Red")
	assert.Error(t, err)
}

func TestRunScript(t *testing.T) {
	stdout, stderr := withSession(t)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.amity")
	require.NoError(t, os.WriteFile(good, []byte(`# set up rooms
create_room office Blue
create_room living Oak

add_person Kofi Mensah fellow Y
`), 0o644))

	require.NoError(t, runScript(runCmd, []string{good}))
	assert.Contains(t, stdout.String(), "→ create_room office Blue")
	assert.NotContains(t, stdout.String(), "set up rooms")
	assert.Empty(t, stderr.String())

	bad := filepath.Join(dir, "bad.amity")
	require.NoError(t, os.WriteFile(bad, []byte("create_room office Blue\nprint_room Nowhere\ncreate_room office Red\n"), 0o644))

	err := runScript(runCmd, []string{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 command(s)")

	// Commands after a failure still run.
	_, err = app.reg.Room("Red")
	assert.NoError(t, err)

	assert.Error(t, runScript(runCmd, []string{filepath.Join(dir, "missing.amity")}))
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor(config.ColorAlways, &buf))
	assert.False(t, useColor(config.ColorNever, &buf))
	assert.False(t, useColor(config.ColorAuto, &buf))
}
