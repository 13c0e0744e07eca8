package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/shantanu-hashcash/soroban-tools/internal/ports"
	"github.com/shantanu-hashcash/soroban-tools/internal/shared"
)

// CargoTreeAdapter shells out to the cargo dependency-tree listing,
// depth-limited to the package's own line.
type CargoTreeAdapter struct{}

func NewCargoTreeAdapter() CargoTreeAdapter {
	return CargoTreeAdapter{}
}

func (a CargoTreeAdapter) ListPackage(ctx context.Context, pkg string) (string, error) {
	cmd := exec.CommandContext(ctx, "cargo", "tree", "--depth", "0", "-p", pkg)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ambiguous, raw := classifyCargoAmbiguity(output, pkg); ambiguous {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("multiple resolved versions of " + pkg + "; deduplicate the dependency before checking:\n" + raw)
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("cargo tree failed for " + pkg).
			WithCause(shared.CommandError(output, err))
	}
	log.Debug().Str("package", pkg).Msg("cargo dependency tree listed")
	return string(output), nil
}

// classifyCargoAmbiguity recognizes cargo's "multiple packages" error,
// which signals two resolved versions of a dependency that must be
// singular. The raw diagnostic is preserved for the operator.
func classifyCargoAmbiguity(output []byte, pkg string) (bool, string) {
	raw := strings.TrimSpace(string(output))
	lowered := strings.ToLower(raw)
	if strings.Contains(lowered, "multiple") && strings.Contains(raw, pkg) {
		return true, raw
	}
	return false, raw
}

var _ ports.CargoTreePort = CargoTreeAdapter{}
