package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/shantanu-hashcash/soroban-tools/internal/core"
	"github.com/shantanu-hashcash/soroban-tools/internal/shared"
	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// Check runs the full reconciliation: resolve every independently-pinned
// revision of the XDR definitions and the core server binary, then
// perform the three pairwise comparisons. Stages run strictly in order;
// the first extraction or fetch failure is returned as an error, the
// first drift halts the run with the mismatch recorded in the report.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	spec, err := s.loadSpec(req.SpecPath, req.ComposeFile, req.WorkflowFile)
	if err != nil {
		return CheckResult{}, err
	}
	if err := core.ValidateCheckSpec(ctx, spec); err != nil {
		return CheckResult{}, err
	}

	report := types.CheckReport{}

	// Stage 1: the cargo ecosystem's pin for the XDR crate.
	cargoRef, err := s.resolveCargoPin(ctx, spec)
	if err != nil {
		return CheckResult{}, err
	}
	report.CargoPin = cargoRef.Pin

	// Stage 2: the schema revision that crate pin embeds.
	cargoSchemaRev, err := s.fetchCrateSchemaRevision(ctx, spec, cargoRef.Pin, req.CargoHome)
	if err != nil {
		return CheckResult{}, err
	}
	report.CargoSchemaRev = cargoSchemaRev

	// Stage 3: the Go ecosystem's pin and its embedded schema revision.
	goVersion, goSchemaRev, err := s.resolveGoSchemaRevision(ctx, spec)
	if err != nil {
		return CheckResult{}, err
	}
	report.GoModuleVersion = goVersion
	report.GoSchemaRev = goSchemaRev

	// Stage 4: the two mirrors must agree on the upstream revision.
	if mismatch := core.CompareRevisions(types.MismatchSchemaRevision, cargoSchemaRev, goSchemaRev); mismatch != nil {
		return haltWithMismatch(report, mismatch), nil
	}
	log.Info().Str("revision", cargoSchemaRev).Msg("schema mirrors agree")

	// Stage 5: the core commit pinned by each distribution channel.
	server, err := s.extractServerRevisions(spec)
	if err != nil {
		return CheckResult{}, err
	}
	report.ContainerRevision = server.ContainerRev
	report.PackageRevision = server.PackageRev

	// Stage 6: both channels must point at the same core commit.
	if mismatch := core.CompareRevisions(types.MismatchServerArtifact, server.ContainerRev, server.PackageRev); mismatch != nil {
		mismatch.Hint = serverArtifactHint(server.ComposeVersion, server.PackageVersion)
		return haltWithMismatch(report, mismatch), nil
	}
	log.Info().Str("revision", server.ContainerRev).Msg("server distribution pins agree")

	// Stage 7: the XDR crate pin the core binary itself was built with,
	// read from its committed dependency transcript at the pinned commit.
	serverPin, err := s.fetchServerSchemaPin(ctx, spec, server.ContainerRev)
	if err != nil {
		return CheckResult{}, err
	}
	report.ServerSchemaPin = serverPin

	// Stage 8: pin-level comparison against stage 1, tolerating the
	// commit/version tagged-union forms but nothing looser.
	if mismatch := core.ComparePins(types.MismatchServerSchemaPin, cargoRef.Pin, serverPin); mismatch != nil {
		mismatch.Hint = schemaPinHint(cargoRef.Pin, serverPin)
		return haltWithMismatch(report, mismatch), nil
	}
	log.Info().Str("pin", cargoRef.Pin.String()).Msg("server schema pin matches repository pin")

	report.Consistent = true
	return CheckResult{Report: report}, nil
}

func (s Service) loadSpec(specPath string, composeFile string, workflowFile string) (types.CheckSpec, error) {
	spec, err := s.SpecLoader.Load(strings.TrimSpace(specPath))
	if err != nil {
		return types.CheckSpec{}, err
	}
	// CLI-level file overrides win over the spec file.
	if strings.TrimSpace(composeFile) != "" {
		spec.Server.ComposeFile = strings.TrimSpace(composeFile)
	}
	if strings.TrimSpace(workflowFile) != "" {
		spec.Server.WorkflowFile = strings.TrimSpace(workflowFile)
	}
	return spec, nil
}

func (s Service) resolveCargoPin(ctx context.Context, spec types.CheckSpec) (types.DependencyReference, error) {
	log.Debug().Str("stage", "resolve-cargo-pin").Str("crate", spec.Schema.Crate).Msg("stage start")
	treeText, err := s.CargoTree.ListPackage(ctx, spec.Schema.Crate)
	if err != nil {
		return types.DependencyReference{}, err
	}
	return core.ExtractPin(types.EcosystemCargo, treeText, spec.Schema.Crate)
}

func (s Service) fetchCrateSchemaRevision(ctx context.Context, spec types.CheckSpec, pin types.RevisionPin, cargoHome string) (string, error) {
	log.Debug().Str("stage", "fetch-cargo-schema-revision").Str("pin", pin.String()).Msg("stage start")
	var marker []byte
	var err error
	switch pin.Kind {
	case types.PinKindCommit:
		marker, err = s.RawContent.Fetch(ctx, spec.Schema.CrateMirrorBase, pin.Commit, spec.Schema.CrateMarkerPath)
	default:
		marker, err = s.Registry(firstNonEmpty(cargoHome, spec.Cache.CargoHome)).
			ReadMarker(spec.Schema.Crate, pin.Version, spec.Schema.CrateMarkerPath)
	}
	if err != nil {
		return "", err
	}
	return shared.TrimMarker(marker), nil
}

func (s Service) resolveGoSchemaRevision(ctx context.Context, spec types.CheckSpec) (string, string, error) {
	log.Debug().Str("stage", "resolve-go-schema-revision").Str("module", spec.Schema.GoModule).Msg("stage start")
	listing, err := s.GoModule.ListModule(ctx, spec.Schema.GoModule)
	if err != nil {
		return "", "", err
	}
	ref, err := core.ExtractPin(types.EcosystemGo, listing, spec.Schema.GoModule)
	if err != nil {
		return "", "", err
	}
	revision := ref.Pin.Value()
	if ref.Pin.Kind == types.PinKindVersion {
		revision = core.ModuleRevision(ref.Pin.Version)
	}
	marker, err := s.RawContent.Fetch(ctx, spec.Schema.GoMirrorBase, revision, spec.Schema.GoMarkerPath)
	if err != nil {
		return "", "", err
	}
	return ref.Pin.Value(), shared.TrimMarker(marker), nil
}

// serverRevisions bundles the stage 5 extractions from the two
// distribution-channel manifests.
type serverRevisions struct {
	ContainerRev   string
	ComposeVersion string
	PackageVersion string
	PackageRev     string
}

func (s Service) extractServerRevisions(spec types.CheckSpec) (serverRevisions, error) {
	log.Debug().Str("stage", "extract-server-revisions").Msg("stage start")
	composeText, err := s.Manifest.ReadText(spec.Server.ComposeFile)
	if err != nil {
		return serverRevisions{}, err
	}
	containerRev, err := core.ExtractField(composeText, core.ImageCommitPattern(spec.Server.Image))
	if err != nil {
		return serverRevisions{}, err
	}
	composeVersion, err := core.ExtractField(composeText, core.ImageVersionPattern(spec.Server.Image))
	if err != nil {
		return serverRevisions{}, err
	}
	workflowText, err := s.Manifest.ReadText(spec.Server.WorkflowFile)
	if err != nil {
		return serverRevisions{}, err
	}
	packageVersion, err := core.ExtractField(workflowText, core.WorkflowVersionPattern(spec.Server.WorkflowKey))
	if err != nil {
		return serverRevisions{}, err
	}
	packageRev, err := core.DebianVersionCommit(packageVersion)
	if err != nil {
		return serverRevisions{}, err
	}
	return serverRevisions{
		ContainerRev:   containerRev,
		ComposeVersion: composeVersion,
		PackageVersion: packageVersion,
		PackageRev:     packageRev,
	}, nil
}

func (s Service) fetchServerSchemaPin(ctx context.Context, spec types.CheckSpec, coreRevision string) (types.RevisionPin, error) {
	log.Debug().Str("stage", "fetch-server-schema-pin").Str("revision", coreRevision).Msg("stage start")
	transcript, err := s.RawContent.Fetch(ctx, spec.Server.SourceBase, coreRevision, spec.Server.DepTreePath)
	if err != nil {
		return types.RevisionPin{}, err
	}
	return core.ExtractTranscriptPin(string(transcript), spec.Schema.Crate)
}

func haltWithMismatch(report types.CheckReport, mismatch *types.Mismatch) CheckResult {
	report.Consistent = false
	report.Mismatch = mismatch
	log.Error().
		Str("dimension", string(mismatch.Dimension)).
		Str("left", mismatch.Left).
		Str("right", mismatch.Right).
		Msg("revision drift detected")
	return CheckResult{Report: report}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
