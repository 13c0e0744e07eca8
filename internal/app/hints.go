package app

import (
	"github.com/shantanu-hashcash/soroban-tools/internal/core"
	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// serverArtifactHint orders the two server package versions so the
// operator knows which distribution pin lags. Best effort: an empty
// hint means neither side could be ordered.
func serverArtifactHint(composeVersion string, packageVersion string) string {
	return core.OrderPackageVersions(composeVersion, packageVersion)
}

// schemaPinHint orders two crate version pins. Commit-form pins have no
// ordering, so drift between commits gets no hint.
func schemaPinHint(repoPin types.RevisionPin, serverPin types.RevisionPin) string {
	if repoPin.Kind != types.PinKindVersion || serverPin.Kind != types.PinKindVersion {
		return ""
	}
	return core.OrderCrateVersions(repoPin.Version, serverPin.Version)
}
