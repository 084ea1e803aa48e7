package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/contractforge/internal/app"
	"github.com/vk/contractforge/internal/discovery"
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

// PackTest describes one dry-run pack load for the harness.
type PackTest struct {
	// Files maps relative pack file names to HCL content.
	Files map[string]string
	// Builtins seeds the dry-run catalog.
	Builtins []string
	// Modules overrides the compiled-in plugin modules when non-empty.
	Modules []discovery.Module
}

// PackResult holds the outcomes of one harness run.
type PackResult struct {
	// Output is the combined log and summary output.
	Output string
	Err    error
	App    *app.App
}

// RunPackTest writes the pack files to a temp directory, builds the app
// around them and drives the tick loop to completion.
func RunPackTest(t *testing.T, tc PackTest) *PackResult {
	t.Helper()

	packDir := t.TempDir()
	for name, content := range tc.Files {
		filePath := filepath.Join(packDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		PackPath:  packDir,
		Builtins:  tc.Builtins,
		LogLevel:  "debug",
		LogFormat: "text",
	})
	require.NoError(t, err)

	outBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, appConfig, tc.Modules...)
	}()

	if panicErr != nil {
		return &PackResult{
			Output: outBuffer.String(),
			Err:    fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background(), appConfig)

	if os.Getenv("CFORGE_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), outBuffer.String())
	}

	return &PackResult{
		Output: outBuffer.String(),
		Err:    runErr,
		App:    testApp,
	}
}
