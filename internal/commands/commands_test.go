package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typemap-resolver/internal/config"
)

const commandsYAML = `
map:
  result: net/http.Response
  multi: github.com/acme/rx.Flux
  types:
    - type: string:binary => io.Reader
  paths:
    /items:
      types:
        - type: array => github.com/acme/coll.List<>
      parameters:
        - add: request => net/http.Request
      responses:
        - content: application/json => github.com/acme/model.Items<>
    /pets:
      exclude: true
    /orders: {}
`

const conflictYAML = `
map:
  types:
    - type: Pet => github.com/acme/model.Pet
    - type: Pet => github.com/acme/model.PetV2
`

func writeMapping(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "typemap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestResolveResponseBody(t *testing.T) {
	path := writeMapping(t, commandsYAML)

	out, err := execute(t, "resolve", "-m", path,
		"--path", "/items", "--name", "Items", "--content-type", "application/json", "--type", "array", "--item", "Item")
	require.NoError(t, err)

	assert.Contains(t, out, "response application/json => github.com/acme/model.Items")
	assert.Contains(t, out, "add request => net/http.Request")
	assert.Contains(t, out, "data type: http.Response[model.Items]")
	assert.Contains(t, out, "imports: github.com/acme/model, net/http")
}

func TestResolveArrayParameter(t *testing.T) {
	path := writeMapping(t, commandsYAML)

	out, err := execute(t, "resolve", "-m", path,
		"--path", "/orders", "--name", "ids", "--type", "array", "--item", "string")
	require.NoError(t, err)

	assert.Contains(t, out, "data type: rx.Flux[string]")
}

func TestResolveFormat(t *testing.T) {
	path := writeMapping(t, commandsYAML)

	out, err := execute(t, "resolve", "-m", path,
		"--path", "/orders", "--name", "file", "--type", "string", "--format", "binary")
	require.NoError(t, err)
	assert.Contains(t, out, "data type: io.Reader")

	out, err = execute(t, "resolve", "-m", path,
		"--path", "/orders", "--name", "title", "--type", "string")
	require.NoError(t, err)
	assert.Contains(t, out, "data type: title")
}

func TestResolveExcluded(t *testing.T) {
	path := writeMapping(t, commandsYAML)

	out, err := execute(t, "resolve", "-m", path, "--path", "/pets")
	require.NoError(t, err)
	assert.Contains(t, out, "endpoint /pets is excluded")
}

func TestResolveSuggestsPaths(t *testing.T) {
	path := writeMapping(t, commandsYAML)

	out, err := execute(t, "resolve", "-m", path, "--path", "/item")
	require.NoError(t, err)
	assert.Contains(t, out, "no endpoint rule for /item; did you mean /items?")
}

func TestResolveDump(t *testing.T) {
	path := writeMapping(t, commandsYAML)

	out, err := execute(t, "resolve", "-m", path, "--path", "/items", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "ParameterName: (string) (len=7) \"request\"")
	assert.Contains(t, out, "(*mapping.AddParameterMapping)({")
	assert.NotContains(t, out, "(add request => net/http.Request)")
	assert.NotContains(t, out, ")(0x")
}

func TestResolveRequiresPath(t *testing.T) {
	_, err := execute(t, "resolve", "-m", writeMapping(t, commandsYAML))
	assert.ErrorContains(t, err, `required flag(s) "path" not set`)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "-m", writeMapping(t, commandsYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "typemap.yaml: ok")

	out, err = execute(t, "check", "-m", writeMapping(t, conflictYAML))
	require.Error(t, err)
	assert.Contains(t, out, "error: [global] type Pet: [ambiguous_mapping] 2 conflicting rules")
	assert.Contains(t, err.Error(), "1 error(s)")
}

func TestCheckMissingFile(t *testing.T) {
	_, err := execute(t, "check", "-m", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read mapping file")
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestCheckWatch(t *testing.T) {
	path := writeMapping(t, commandsYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer

	cfg := config.Default()
	cfg.MappingFile = path
	a := &app{cfg: cfg, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	done := make(chan error, 1)

	go func() { done <- a.watchCheck(ctx, &out) }()

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("ok"))
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(conflictYAML), 0o644))

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("ambiguous_mapping"))
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "type mapping file", doc["title"])
}
