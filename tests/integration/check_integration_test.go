package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shantanu-hashcash/soroban-tools/internal/adapters"
	"github.com/shantanu-hashcash/soroban-tools/internal/app"
	"github.com/shantanu-hashcash/soroban-tools/internal/ports"
	"github.com/shantanu-hashcash/soroban-tools/internal/types"
	"github.com/shantanu-hashcash/soroban-tools/tests/testutil"
)

const xdrCommit = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
const schemaRev = "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
const coreCommit = "0241e79f7"

type stubCargoTree struct{ out string }

func (s stubCargoTree) ListPackage(context.Context, string) (string, error) { return s.out, nil }

type stubGoModule struct{ out string }

func (s stubGoModule) ListModule(context.Context, string) (string, error) { return s.out, nil }

// newRawServer serves raw-content paths from a map, standing in for the
// mirror and core source hosts.
func newRawServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(content))
	}))
	t.Cleanup(server.Close)
	return server
}

func writeCheckFixture(t *testing.T, rawBase string, composeCommit string, workflowCommit string) app.CheckRequest {
	t.Helper()
	dir := t.TempDir()
	composePath := testutil.WriteFile(t, dir, "docker-compose.yml", fmt.Sprintf(
		"services:\n  core:\n    image: docker.io/hcnet/hcnet-core:21.0.0-1812.%s.focal\n", composeCommit))
	workflowPath := testutil.WriteFile(t, dir, "e2e.yml", fmt.Sprintf(
		"env:\n  CORE_DEBIAN_PKG_VERSION: 21.0.0-1812.%s\n", workflowCommit))
	specPath := testutil.WriteFile(t, dir, "check.yaml", fmt.Sprintf(`
schema_version: "1"
schema:
  crate_mirror_base: %[1]s/crate-mirror
  go_mirror_base: %[1]s/go-mirror
server:
  source_base: %[1]s/core-src
`, rawBase))
	return app.CheckRequest{
		SpecPath:     specPath,
		ComposeFile:  composePath,
		WorkflowFile: workflowPath,
	}
}

func newIntegrationService(rawTimeoutSec int) app.Service {
	service := app.NewService(app.ServiceOptions{HTTPTimeoutSec: rawTimeoutSec})
	service.CargoTree = stubCargoTree{out: "hcnet-xdr v23.0.0 (https://x?rev=" + xdrCommit + "#zzz)\n"}
	service.GoModule = stubGoModule{out: "github.com/shantanu-hashcash/go v0.0.0-20240101120000-abcdefabcdef\n"}
	service.Registry = func(string) ports.RegistryCachePort { return adapters.NewRegistryCacheAdapter("/nonexistent") }
	return service
}

func TestCheckEndToEndConsistent(t *testing.T) {
	server := newRawServer(t, map[string]string{
		"/crate-mirror/" + xdrCommit + "/xdr/curr-version":                    schemaRev + "\n",
		"/go-mirror/abcdefabcdef/xdr/xdr_commit_generated.txt":                schemaRev,
		"/core-src/" + coreCommit + "/src/rust/src/host-dep-tree-curr.txt":    "hcnet-xdr v23.0.0 (https://x?rev=" + xdrCommit + "#zzz)\n",
	})
	service := newIntegrationService(5)
	req := writeCheckFixture(t, server.URL, coreCommit, coreCommit)

	result, err := service.Check(t.Context(), req)
	require.NoError(t, err)
	assert.True(t, result.Report.Consistent)
	assert.Equal(t, schemaRev, result.Report.CargoSchemaRev)
	assert.Equal(t, coreCommit, result.Report.ContainerRevision)
}

func TestCheckEndToEndSchemaDrift(t *testing.T) {
	server := newRawServer(t, map[string]string{
		"/crate-mirror/" + xdrCommit + "/xdr/curr-version":     schemaRev + "\n",
		"/go-mirror/abcdefabcdef/xdr/xdr_commit_generated.txt": "cafecafecafecafecafecafecafecafecafecafe",
	})
	service := newIntegrationService(5)
	req := writeCheckFixture(t, server.URL, coreCommit, coreCommit)

	result, err := service.Check(t.Context(), req)
	require.NoError(t, err)
	require.NotNil(t, result.Report.Mismatch)
	assert.Equal(t, types.MismatchSchemaRevision, result.Report.Mismatch.Dimension)
	assert.Equal(t, schemaRev, result.Report.Mismatch.Left)
}

func TestCheckEndToEndFetch404(t *testing.T) {
	server := newRawServer(t, map[string]string{})
	service := newIntegrationService(5)
	req := writeCheckFixture(t, server.URL, coreCommit, coreCommit)

	_, err := service.Check(t.Context(), req)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestCheckEndToEndServerArtifactDrift(t *testing.T) {
	server := newRawServer(t, map[string]string{
		"/crate-mirror/" + xdrCommit + "/xdr/curr-version":     schemaRev + "\n",
		"/go-mirror/abcdefabcdef/xdr/xdr_commit_generated.txt": schemaRev,
	})
	service := newIntegrationService(5)
	req := writeCheckFixture(t, server.URL, coreCommit, "deadbee12")

	result, err := service.Check(t.Context(), req)
	require.NoError(t, err)
	require.NotNil(t, result.Report.Mismatch)
	assert.Equal(t, types.MismatchServerArtifact, result.Report.Mismatch.Dimension)
}
