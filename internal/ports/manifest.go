package ports

import "github.com/shantanu-hashcash/soroban-tools/internal/types"

// ManifestReaderPort reads a local configuration artifact (compose
// descriptor, CI workflow) as plain text for positional field
// extraction. The file format is deliberately not parsed.
type ManifestReaderPort interface {
	ReadText(path string) (string, error)
}

// CheckSpecPort loads the coordinates spec, applying defaults for every
// field absent from the file. An empty path yields the pure defaults.
type CheckSpecPort interface {
	Load(path string) (types.CheckSpec, error)
}
