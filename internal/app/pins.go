package app

import (
	"context"

	"github.com/shantanu-hashcash/soroban-tools/internal/core"
	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// Pins resolves every independently-pinned revision without comparing,
// for manual inspection when deciding which pin to bump.
func (s Service) Pins(ctx context.Context, req PinsRequest) (PinsResult, error) {
	spec, err := s.loadSpec(req.SpecPath, req.ComposeFile, req.WorkflowFile)
	if err != nil {
		return PinsResult{}, err
	}
	if err := core.ValidateCheckSpec(ctx, spec); err != nil {
		return PinsResult{}, err
	}

	cargoRef, err := s.resolveCargoPin(ctx, spec)
	if err != nil {
		return PinsResult{}, err
	}
	goListing, err := s.GoModule.ListModule(ctx, spec.Schema.GoModule)
	if err != nil {
		return PinsResult{}, err
	}
	goRef, err := core.ExtractPin(types.EcosystemGo, goListing, spec.Schema.GoModule)
	if err != nil {
		return PinsResult{}, err
	}
	server, err := s.extractServerRevisions(spec)
	if err != nil {
		return PinsResult{}, err
	}

	return PinsResult{Pins: []PinEntry{
		{Source: "cargo:" + spec.Schema.Crate, Value: cargoRef.Pin.String()},
		{Source: "go:" + spec.Schema.GoModule, Value: goRef.Pin.String()},
		{Source: "compose:" + spec.Server.ComposeFile, Value: server.ContainerRev},
		{Source: "workflow:" + spec.Server.WorkflowFile, Value: server.PackageRev},
	}}, nil
}
