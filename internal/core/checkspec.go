package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// supportedSpecVersions lists accepted check-spec schema versions.
var supportedSpecVersions = map[string]struct{}{
	"1": {},
}

// DefaultCheckSpec returns the built-in coordinates: the XDR mirrors and
// core server pins of this repository. A check-spec file only overrides
// individual fields.
func DefaultCheckSpec() types.CheckSpec {
	return types.CheckSpec{
		SchemaVersion: "1",
		Schema: types.SchemaSpec{
			Crate:           "hcnet-xdr",
			CrateMirrorBase: "https://raw.githubusercontent.com/shantanu-hashcash/rs-hcnet-xdr",
			CrateMarkerPath: "xdr/curr-version",
			GoModule:        "github.com/shantanu-hashcash/go",
			GoMirrorBase:    "https://raw.githubusercontent.com/shantanu-hashcash/go",
			GoMarkerPath:    "xdr/xdr_commit_generated.txt",
		},
		Server: types.ServerSpec{
			Image:        "hcnet-core",
			ComposeFile:  "docker-compose.yml",
			WorkflowFile: ".github/workflows/e2e.yml",
			WorkflowKey:  "CORE_DEBIAN_PKG_VERSION",
			SourceBase:   "https://raw.githubusercontent.com/shantanu-hashcash/hcnet-core",
			DepTreePath:  "src/rust/src/host-dep-tree-curr.txt",
		},
	}
}

// MergeCheckSpec fills every empty field of spec from the defaults.
// Field-level merge keeps partial override files small.
func MergeCheckSpec(spec types.CheckSpec) types.CheckSpec {
	defaults := DefaultCheckSpec()
	merged := spec
	if strings.TrimSpace(merged.SchemaVersion) == "" {
		merged.SchemaVersion = defaults.SchemaVersion
	}
	fill(&merged.Schema.Crate, defaults.Schema.Crate)
	fill(&merged.Schema.CrateMirrorBase, defaults.Schema.CrateMirrorBase)
	fill(&merged.Schema.CrateMarkerPath, defaults.Schema.CrateMarkerPath)
	fill(&merged.Schema.GoModule, defaults.Schema.GoModule)
	fill(&merged.Schema.GoMirrorBase, defaults.Schema.GoMirrorBase)
	fill(&merged.Schema.GoMarkerPath, defaults.Schema.GoMarkerPath)
	fill(&merged.Server.Image, defaults.Server.Image)
	fill(&merged.Server.ComposeFile, defaults.Server.ComposeFile)
	fill(&merged.Server.WorkflowFile, defaults.Server.WorkflowFile)
	fill(&merged.Server.WorkflowKey, defaults.Server.WorkflowKey)
	fill(&merged.Server.SourceBase, defaults.Server.SourceBase)
	fill(&merged.Server.DepTreePath, defaults.Server.DepTreePath)
	return merged
}

func fill(target *string, fallback string) {
	if strings.TrimSpace(*target) == "" {
		*target = fallback
	}
}

// ValidateCheckSpec rejects specs that merged into an unusable state.
func ValidateCheckSpec(ctx context.Context, spec types.CheckSpec) error {
	assert.NotEmpty(ctx, spec.SchemaVersion, "schema_version must be set")
	assert.NotEmpty(ctx, spec.Schema.Crate, "schema.crate must be set")
	assert.NotEmpty(ctx, spec.Schema.GoModule, "schema.go_module must be set")
	if _, ok := supportedSpecVersions[strings.TrimSpace(spec.SchemaVersion)]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported check spec schema_version: " + spec.SchemaVersion)
	}
	for name, value := range map[string]string{
		"schema.crate_mirror_base": spec.Schema.CrateMirrorBase,
		"schema.crate_marker_path": spec.Schema.CrateMarkerPath,
		"schema.go_mirror_base":    spec.Schema.GoMirrorBase,
		"schema.go_marker_path":    spec.Schema.GoMarkerPath,
		"server.image":             spec.Server.Image,
		"server.compose_file":      spec.Server.ComposeFile,
		"server.workflow_file":     spec.Server.WorkflowFile,
		"server.workflow_key":      spec.Server.WorkflowKey,
		"server.source_base":       spec.Server.SourceBase,
		"server.dep_tree_path":     spec.Server.DepTreePath,
	} {
		if strings.TrimSpace(value) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("check spec field must not be empty: " + name)
		}
	}
	return nil
}
