//go:build integration

package integration

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// rawHostScript is a minimal raw-content host: it serves the marker and
// transcript files a consistent check expects to find on the mirror and
// core source hosts.
const rawHostScript = `
import http.server

FILES = {
    "/crate-mirror/%[1]s/xdr/curr-version": "%[2]s\n",
    "/go-mirror/abcdefabcdef/xdr/xdr_commit_generated.txt": "%[2]s",
    "/core-src/%[3]s/src/rust/src/host-dep-tree-curr.txt":
        "hcnet-xdr v23.0.0 (https://x?rev=%[1]s#zzz)\n",
}

class Handler(http.server.BaseHTTPRequestHandler):
    def do_GET(self):
        body = FILES.get(self.path)
        if body is None:
            self.send_response(404)
            self.end_headers()
            return
        data = body.encode()
        self.send_response(200)
        self.send_header("Content-Length", str(len(data)))
        self.end_headers()
        self.wfile.write(data)

http.server.HTTPServer(("", 8081), Handler).serve_forever()
`

func startRawHost(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()
	script := fmt.Sprintf(rawHostScript, xdrCommit, schemaRev, coreCommit)
	req := testcontainers.ContainerRequest{
		Image:        "python:3.12-alpine",
		ExposedPorts: []string{"8081/tcp"},
		Cmd:          []string{"python", "-c", script},
		WaitingFor:   wait.ForListeningPort("8081/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8081/tcp")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())
	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return endpoint, cleanup
}

func TestCheckAgainstContainerizedRawHost(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	ctx := t.Context()
	endpoint, cleanup := startRawHost(ctx, t)
	t.Cleanup(cleanup)

	service := newIntegrationService(30)
	req := writeCheckFixture(t, endpoint, coreCommit, coreCommit)

	result, err := service.Check(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Report.Consistent)
	assert.Nil(t, result.Report.Mismatch)

	// Doctor the workflow pin and confirm drift is caught end to end.
	driftedReq := writeCheckFixture(t, endpoint, coreCommit, "deadbee12")
	drifted, err := service.Check(ctx, driftedReq)
	require.NoError(t, err)
	require.NotNil(t, drifted.Report.Mismatch)
	assert.Equal(t, types.MismatchServerArtifact, drifted.Report.Mismatch.Dimension)
	assert.True(t, strings.Contains(drifted.Report.Mismatch.Right, "deadbee12"))
}
