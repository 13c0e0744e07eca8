package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/shantanu-hashcash/soroban-tools/internal/ports"
)

// RegistryCacheAdapter reads marker files from the local cargo registry
// source cache. The registry host directory under registry/src is
// hash-suffixed, so the version directory is located by glob.
type RegistryCacheAdapter struct {
	// cargoHome overrides $CARGO_HOME when non-empty.
	cargoHome string
}

func NewRegistryCacheAdapter(cargoHome string) RegistryCacheAdapter {
	return RegistryCacheAdapter{cargoHome: strings.TrimSpace(cargoHome)}
}

func (a RegistryCacheAdapter) ReadMarker(pkg string, version string, path string) ([]byte, error) {
	root, err := a.cacheRoot()
	if err != nil {
		return nil, err
	}
	pattern := filepath.Join(root, "registry", "src", "*", pkg+"-"+version, filepath.FromSlash(path))
	candidates, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid registry cache pattern").
			WithCause(err)
	}
	if len(candidates) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("fetch failed: no cached sources for " + pkg + "-" + version + " under " + root)
	}
	data, err := os.ReadFile(candidates[0])
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("fetch failed: cannot read cached marker " + candidates[0]).
			WithCause(err)
	}
	log.Debug().Str("path", candidates[0]).Msg("cached marker read")
	return data, nil
}

func (a RegistryCacheAdapter) cacheRoot() (string, error) {
	if a.cargoHome != "" {
		return a.cargoHome, nil
	}
	if env := strings.TrimSpace(os.Getenv("CARGO_HOME")); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("cannot locate cargo home").
			WithCause(err)
	}
	return filepath.Join(home, ".cargo"), nil
}

var _ ports.RegistryCachePort = RegistryCacheAdapter{}
