package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/shantanu-hashcash/soroban-tools/internal/ports"
)

// ManifestFileAdapter reads local configuration artifacts as plain text.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found: " + path).
			WithCause(err)
	}
	return string(data), nil
}

var _ ports.ManifestReaderPort = ManifestFileAdapter{}
