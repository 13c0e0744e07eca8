package ports

import "context"

// RawContentPort fetches the literal bytes of a path at a revision from
// a raw source-control content endpoint. Implementations must fail on
// any non-2xx response; partial or cached content is never success.
// Nothing is cached across invocations: every run re-fetches.
type RawContentPort interface {
	Fetch(ctx context.Context, base string, revision string, path string) ([]byte, error)
}

// RegistryCachePort reads a file from the local resolved-package cache
// for a published crate version, following the conventional
// <cache-root>/<pkg>-<version>/<path> layout.
type RegistryCachePort interface {
	ReadMarker(pkg string, version string, path string) ([]byte, error)
}
