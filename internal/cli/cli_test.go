package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/centrality/internal/config"
	"github.com/katalvlaran/centrality/internal/ctxlog"
	"github.com/katalvlaran/centrality/internal/report"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
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

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the command tree with a fresh viper and an empty config file
// unless args already name one.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	hasConfig := false
	for _, a := range args {
		if a == "--config" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append(args, "--config", writeConfig(t, "{}\n"))
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestNodes_StarJSON(t *testing.T) {
	out, err := run(t, "nodes", "--topology", "star", "--n", "5", "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	var tb report.Table
	require.NoError(t, json.Unmarshal([]byte(out), &tb))
	assert.Equal(t, report.KindNodes, tb.Kind)
	assert.Equal(t, 5, tb.Vertices)
	require.Len(t, tb.Rows, 5)
	assert.Equal(t, "Center", tb.Rows[0].ID)
	assert.InDelta(t, 1.0, tb.Rows[0].Score, 1e-12)
}

func TestEdges_PathYAML(t *testing.T) {
	out, err := run(t, "edges", "--topology", "path", "--n", "3", "--normalized=false",
		"--format", "yaml", "--log-level", "error")
	require.NoError(t, err)

	var tb report.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &tb))
	require.Len(t, tb.Rows, 2)
	for _, r := range tb.Rows {
		assert.InDelta(t, 2.0, r.Score, 1e-12, r.ID)
	}
}

func TestNodes_ConfigFileAndTop(t *testing.T) {
	path := writeConfig(t, `
topology:
  kind: grid
  rows: 3
  cols: 3
  weighted: true
  min_weight: 1
  max_weight: 3
centrality:
  workers: 2
output:
  format: json
  top: 2
log_level: error
`)
	out, err := run(t, "nodes", "--config", path)
	require.NoError(t, err)

	var tb report.Table
	require.NoError(t, json.Unmarshal([]byte(out), &tb))
	assert.Equal(t, "grid", tb.Topology)
	assert.Equal(t, 9, tb.Vertices)
	assert.Equal(t, 12, tb.Edges)
	assert.Len(t, tb.Rows, 2)
}

func TestNodes_SampledWithSubset(t *testing.T) {
	out, err := run(t, "nodes", "--topology", "path", "--n", "6", "--subset", "0,1,2,3",
		"--k", "4", "--format", "json", "--log-level", "error")
	require.NoError(t, err)

	var tb report.Table
	require.NoError(t, json.Unmarshal([]byte(out), &tb))
	assert.Len(t, tb.Rows, 4)
	assert.Equal(t, 4, tb.Samples)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := run(t, "nodes", "--format", "xml")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "nodes", "--topology", "path", "--n", "1", "--log-level", "error")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvlath-bc "+Version+"\n", out)
}

func TestWatchConfig_RequiresFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := watchConfig(context.Background(), &bytes.Buffer{}, report.KindNodes)
	require.Error(t, err)
}

func TestWatchConfig_RecomputesOnWrite(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, "topology: {kind: path, n: 3}\noutput: {format: text}\n")
	require.NoError(t, config.Init(path))

	var out, logs syncBuffer
	logger, err := ctxlog.New("info", &logs)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(ctxlog.WithLogger(context.Background(), logger))

	done := make(chan error, 1)
	go func() { done <- watchConfig(ctx, &out, report.KindNodes) }()
	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "watching config")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("topology: {kind: star, n: 4}\noutput: {format: text}\n"), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "betweenness on star")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
