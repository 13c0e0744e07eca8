package adapters

import (
	"context"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/shantanu-hashcash/soroban-tools/internal/ports"
	"github.com/shantanu-hashcash/soroban-tools/internal/shared"
)

// GoListAdapter shells out to the Go module listing command, returning
// the raw "module version" line for one module.
type GoListAdapter struct{}

func NewGoListAdapter() GoListAdapter {
	return GoListAdapter{}
}

func (a GoListAdapter) ListModule(ctx context.Context, module string) (string, error) {
	cmd := exec.CommandContext(ctx, "go", "list", "-m", module)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("go list failed for " + module).
			WithCause(shared.CommandError(output, err))
	}
	log.Debug().Str("module", module).Msg("go module version listed")
	return string(output), nil
}

var _ ports.GoModulePort = GoListAdapter{}
