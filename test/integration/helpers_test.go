//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // NEXTROUTE_HOME — user config.yaml lives here
	ProjectDir string // a mock Next.js project root
}

// setupTestEnv creates isolated temp directories and points NEXTROUTE_HOME at
// one of them so no real user configuration leaks into the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("NEXTROUTE_HOME", env.HomeDir)
	return env
}

// setupNextProject writes a package.json depending on next@version and
// creates the given routing directories.
func setupNextProject(t *testing.T, projectDir, version string, dirs ...string) {
	t.Helper()

	writeFile(t, filepath.Join(projectDir, "package.json"), `{
  "name": "web",
  "private": true,
  "dependencies": {
    "next": "`+version+`",
    "react": "^19.0.0"
  }
}
`)
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(projectDir, d), 0755); err != nil {
			t.Fatalf("creating %s: %v", d, err)
		}
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// snapshot lists every path under root, relative and slash-separated.
func snapshot(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return paths
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileEmpty fails if the file doesn't exist or has content.
func assertFileEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
		return
	}
	if info.Size() != 0 {
		t.Errorf("expected %s to be empty, it has %d bytes", path, info.Size())
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
