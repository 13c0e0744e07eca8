package app

import (
	"github.com/shantanu-hashcash/soroban-tools/internal/adapters"
	"github.com/shantanu-hashcash/soroban-tools/internal/ports"
)

type Service struct {
	SpecLoader ports.CheckSpecPort
	CargoTree  ports.CargoTreePort
	GoModule   ports.GoModulePort
	RawContent ports.RawContentPort
	Registry   func(cargoHome string) ports.RegistryCachePort
	Manifest   ports.ManifestReaderPort
}

// ServiceOptions carries the HTTP tuning knobs threaded down to the
// content fetcher.
type ServiceOptions struct {
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

func NewService(opts ServiceOptions) Service {
	return Service{
		SpecLoader: adapters.NewCheckSpecFileAdapter(),
		CargoTree:  adapters.NewCargoTreeAdapter(),
		GoModule:   adapters.NewGoListAdapter(),
		RawContent: adapters.NewRawContentAdapter(opts.HTTPTimeoutSec, opts.HTTPRetries, opts.HTTPRetryDelayMs),
		Registry: func(cargoHome string) ports.RegistryCachePort {
			return adapters.NewRegistryCacheAdapter(cargoHome)
		},
		Manifest: adapters.NewManifestFileAdapter(),
	}
}
