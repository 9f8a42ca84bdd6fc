package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/addressbook/internal/config"
	"github.com/mesh-intelligence/addressbook/internal/session"
	"github.com/mesh-intelligence/addressbook/pkg/addressbook"
)

// runCLI executes the root command with a temporary config directory and
// returns everything written to stdout.
func runCLI(t *testing.T, configDir, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"ADDRESSBOOK_OUTPUT", "ADDRESSBOOK_LOG_LEVEL", "ADDRESSBOOK_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config-dir", configDir, "--color=false"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "addressbook v"+addressbook.Version+"\nmodule: "+addressbook.ModulePath+"\n", out)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	out, err := runCLI(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+filepath.Join(dir, config.FileName))
	assert.FileExists(t, filepath.Join(dir, config.FileName))

	out, err = runCLI(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config already exists")
}

func TestDemoText(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "", "demo")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Record John added.",
		"Record Jane added.",
		"Contact name: Jane, phones: 9876543210",
		"Contact name: John, phones: 1234567890, 5555555555",
		"Phone edited.",
		"Contact name: John, phones: 1112223333, 5555555555",
		"John: 5555555555",
		"Record Jane deleted.",
		"Record Jane not found.",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestRunFromStdin(t *testing.T) {
	script := "add John 1234567890\nadd-phone John 1234567890\nadd-phone John 12\nfind-phone John 1234567890\n"

	out, err := runCLI(t, t.TempDir(), script, "run")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Record John added.", lines[0])
	assert.Equal(t, "Phone already exists.", lines[1])
	assert.Contains(t, lines[2], "invalid phone number format")
	assert.Equal(t, "John: 1234567890", lines[3])
}

func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("add Jane 9876543210\ndelete Jane\n"), 0o644))

	out, err := runCLI(t, t.TempDir(), "", "run", path)
	require.NoError(t, err)
	assert.Equal(t, "Record Jane added.\nRecord Jane deleted.\n", out)
}

func TestRunMissingFileIsSystemError(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "", "run", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestRunMalformedScriptIsUserError(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "add John\nfrobnicate\n", "run")
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrUnknownCommand)
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Equal(t, "Record John added.\n", out)
}

func TestRunJSONOutput(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "add John 1234567890\nfind Bob\n", "run", "--output", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first session.Result
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, session.CmdAdd, first.Command)
	assert.Equal(t, "added", first.Outcome.String())
	assert.Equal(t, []session.RecordView{{Name: "John", Phones: []string{"1234567890"}}}, first.Records)

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "not_found", second["outcome"])
	assert.Equal(t, "record", second["subject"])
}

func TestRunYAMLOutput(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "add John 1234567890\nall\n", "run", "-o", "yaml")
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var docs []session.Result
	for {
		var r session.Result
		if err := dec.Decode(&r); err != nil {
			break
		}
		docs = append(docs, r)
	}
	require.Len(t, docs, 2)
	assert.Equal(t, session.CmdAll, docs[1].Command)
	assert.Equal(t, "John", docs[1].Records[0].Name)
}

func TestOutputFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("output: json\n"), 0o644))

	out, err := runCLI(t, dir, "all\n", "run")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON, got %q", out)
}

func TestInvalidOutputFlagIsUserError(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "", "demo", "--output", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrOutputUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(errors.New("bad input")))
	assert.Equal(t, exitSysError, exitCode(sysErr(errors.New("disk"))))
	assert.NoError(t, sysErr(nil))
}
