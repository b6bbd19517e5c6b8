// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/plangraph/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles writes each file, keyed by its slash-separated relative path,
// below a fresh temporary directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return dir
}

// HarnessResult holds the outcomes of an application run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Dir       string
}

// RunPlan writes files to a temporary directory and runs the application
// against it. An empty cfg.PlanPath is pointed at the directory; a relative
// one is resolved inside it.
func RunPlan(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	switch {
	case cfg.PlanPath == "":
		cfg.PlanPath = dir
	case !filepath.IsAbs(cfg.PlanPath):
		cfg.PlanPath = filepath.Join(dir, filepath.FromSlash(cfg.PlanPath))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	result := RunApp(t, cfg)
	result.Dir = dir
	return result
}

// RunApp runs the application with cfg, capturing its output and logs.
func RunApp(t *testing.T, cfg app.Config) *HarnessResult {
	t.Helper()

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err}
	}

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp, err := app.NewApp(out, logBuffer, appConfig, nil)
	if err != nil {
		return &HarnessResult{Err: err}
	}
	runErr := testApp.Run(context.Background())

	if os.Getenv("PLANGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
