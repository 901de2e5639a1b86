//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// workspace is an isolated directory standing in for a project tree managed
// by a caller of the bridge.
type workspace struct {
	Root string
}

func setupWorkspace(t *testing.T) *workspace {
	t.Helper()
	ws := &workspace{Root: t.TempDir()}
	t.Setenv("FSATTR_HOME", t.TempDir())
	return ws
}

// file creates a writable file under the workspace and restores write
// permission at cleanup so the temp dir can be removed.
func (ws *workspace) file(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(ws.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", rel, err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0644) })
	return path
}

func mtime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.ModTime()
}
