package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/shantanu-hashcash/soroban-tools/internal/core"
	"github.com/shantanu-hashcash/soroban-tools/internal/ports"
	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// CheckSpecFileAdapter loads the coordinates spec from YAML, merging the
// built-in defaults for absent fields.
type CheckSpecFileAdapter struct{}

func NewCheckSpecFileAdapter() CheckSpecFileAdapter {
	return CheckSpecFileAdapter{}
}

func (a CheckSpecFileAdapter) Load(path string) (types.CheckSpec, error) {
	if strings.TrimSpace(path) == "" {
		return core.DefaultCheckSpec(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CheckSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("check spec file not found: " + path).
			WithCause(err)
	}
	var spec types.CheckSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.CheckSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse check spec yaml: " + path).
			WithCause(err)
	}
	// A spec file must declare the schema version it was written
	// against; only the built-in defaults get one implicitly.
	if strings.TrimSpace(spec.SchemaVersion) == "" {
		return types.CheckSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("check spec is missing schema_version: " + path)
	}
	return core.MergeCheckSpec(spec), nil
}

var _ ports.CheckSpecPort = CheckSpecFileAdapter{}
