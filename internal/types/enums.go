package types

// Ecosystem identifies which language toolchain resolved a dependency.
type Ecosystem string

const (
	// EcosystemCargo is the native-compiled toolchain (cargo/crates).
	EcosystemCargo Ecosystem = "cargo"
	// EcosystemGo is the managed-runtime toolchain (Go modules).
	EcosystemGo Ecosystem = "go"
)

// PinKind discriminates the RevisionPin tagged union.
type PinKind string

const (
	PinKindCommit  PinKind = "commit"
	PinKindVersion PinKind = "version"
)

// MismatchDimension names which pairwise comparison detected drift.
type MismatchDimension string

const (
	// MismatchSchemaRevision: the cargo and Go mirrors of the XDR
	// definitions disagree on the upstream schema revision.
	MismatchSchemaRevision MismatchDimension = "schema-revision-drift"
	// MismatchServerArtifact: the compose image tag and the CI workflow
	// package version pin different core commits.
	MismatchServerArtifact MismatchDimension = "server-artifact-drift"
	// MismatchServerSchemaPin: the core binary's own XDR crate pin
	// differs from this repository's pin.
	MismatchServerSchemaPin MismatchDimension = "server-schema-pin-drift"
)
