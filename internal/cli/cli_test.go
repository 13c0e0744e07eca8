package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"check", "pins"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := newCheckCommand()
	flags := []string{
		"spec", "compose", "workflow", "cargo-home",
		"http-timeout", "http-retries", "http-retry-delay-ms",
	}
	for _, name := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestPinsCommandFlags(t *testing.T) {
	cmd := newPinsCommand()
	for _, name := range []string{"spec", "compose", "workflow"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

// ---------- Exit code mapping ----------

func TestExitCodeForError(t *testing.T) {
	drift := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("revision drift: schema-revision-drift (a != b)")
	assert.Equal(t, 3, exitCodeForError(drift))

	precondition := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("multiple resolved versions of hcnet-xdr")
	assert.Equal(t, 4, exitCodeForError(precondition))

	extraction := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("no match: pattern matched no line")
	assert.Equal(t, 4, exitCodeForError(extraction))

	fetch := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("fetch failed for versioned content")
	assert.Equal(t, 5, exitCodeForError(fetch))

	invalid := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("unsupported check spec schema_version")
	assert.Equal(t, 2, exitCodeForError(invalid))
}
