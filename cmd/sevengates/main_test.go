package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seven-gates/internal/app"
	"seven-gates/pkg/sims/sevengates"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestRunDefaultsMatchGolden(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, app.NewConfig(), nil))
	if diff := cmp.Diff(readGolden(t, "default.golden"), out.String()); diff != "" {
		t.Fatalf("default run mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFinalMatchesSimulate(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Steps, cfg.Seed = 4, 3, 3, 1

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, nil))

	initial, err := sevengates.Random(4, 3, 1)
	require.NoError(t, err)
	final, err := sevengates.Simulate(initial, 3)
	require.NoError(t, err)
	assert.Equal(t, final.Render()+"\n", out.String())
}

func TestRunFramesMatchGolden(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Steps = 3
	cfg.Frames = true

	var out bytes.Buffer
	paced := 0
	require.NoError(t, run(&out, cfg, func() { paced++ }))
	if diff := cmp.Diff(readGolden(t, "frames_w32_h16_s3.golden"), out.String()); diff != "" {
		t.Fatalf("frames mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, paced, "pace should run once per step")
	assert.Equal(t, 1, strings.Count(out.String(), "Initial state:"))
	assert.Equal(t, 3, strings.Count(out.String(), "\nStep "))
}

func TestRunFramesZeroSteps(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Steps, cfg.Seed = 5, 2, 0, 7
	cfg.Frames = true

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, nil))
	assert.Equal(t, "Initial state:\n:.=# \n @* :\n", out.String())
}

func TestRunRejectsBadDimensions(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width = 0
	err := run(&bytes.Buffer{}, cfg, nil)
	assert.True(t, errors.Is(err, sevengates.ErrInvalidDimensions), "got %v", err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunPropagatesWriteErrors(t *testing.T) {
	cfg := app.NewConfig()
	assert.Error(t, run(failingWriter{}, cfg, nil))
	cfg.Frames = true
	assert.Error(t, run(failingWriter{}, cfg, nil))
}
