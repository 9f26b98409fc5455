package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindEnvLocal_InCurrentDir(t *testing.T) {
	// Create temp directory structure
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env.local")
	if err := os.WriteFile(envPath, []byte("TEST=value"), 0644); err != nil {
		t.Fatal(err)
	}

	// Change to temp dir
	oldCwd, _ := os.Getwd()
	defer os.Chdir(oldCwd)
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	result := findEnvLocal()
	if result == "" {
		t.Error("expected to find .env.local in current directory")
	}
}

func TestFindEnvLocal_InParentDir(t *testing.T) {
	// Create temp directory structure: parent/.env.local, parent/child/
	tmpDir := t.TempDir()
	childDir := filepath.Join(tmpDir, "child")
	if err := os.Mkdir(childDir, 0755); err != nil {
		t.Fatal(err)
	}
	envPath := filepath.Join(tmpDir, ".env.local")
	if err := os.WriteFile(envPath, []byte("TEST=parent"), 0644); err != nil {
		t.Fatal(err)
	}

	// Change to child dir
	oldCwd, _ := os.Getwd()
	defer os.Chdir(oldCwd)
	if err := os.Chdir(childDir); err != nil {
		t.Fatal(err)
	}

	result := findEnvLocal()
	if result == "" {
		t.Error("expected to find .env.local in parent directory")
	}
	// Resolve symlinks for comparison (macOS /var -> /private/var)
	expectedResolved, _ := filepath.EvalSymlinks(envPath)
	resultResolved, _ := filepath.EvalSymlinks(result)
	if resultResolved != expectedResolved {
		t.Errorf("expected %s, got %s", expectedResolved, resultResolved)
	}
}

func TestFindEnvLocal_ClosestWins(t *testing.T) {
	// Create: grandparent/.env.local, grandparent/parent/.env.local, grandparent/parent/child/
	tmpDir := t.TempDir()
	parentDir := filepath.Join(tmpDir, "parent")
	childDir := filepath.Join(parentDir, "child")
	if err := os.MkdirAll(childDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{tmpDir, parentDir} {
		envPath := filepath.Join(dir, ".env.local")
		if err := os.WriteFile(envPath, []byte("TEST=x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	oldCwd, _ := os.Getwd()
	defer os.Chdir(oldCwd)
	if err := os.Chdir(childDir); err != nil {
		t.Fatal(err)
	}

	result := findEnvLocal()
	expectedResolved, _ := filepath.EvalSymlinks(filepath.Join(parentDir, ".env.local"))
	resultResolved, _ := filepath.EvalSymlinks(result)
	if resultResolved != expectedResolved {
		t.Errorf("expected %s, got %s", expectedResolved, resultResolved)
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("BMMERGE_TEST_BOOL", "true")
	v, ok := envBool("BMMERGE_TEST_BOOL")
	if !ok || !v {
		t.Errorf("expected (true, true), got (%v, %v)", v, ok)
	}

	t.Setenv("BMMERGE_TEST_BOOL", "0")
	v, ok = envBool("BMMERGE_TEST_BOOL")
	if !ok || v {
		t.Errorf("expected (false, true), got (%v, %v)", v, ok)
	}

	t.Setenv("BMMERGE_TEST_BOOL", "nope")
	_, ok = envBool("BMMERGE_TEST_BOOL")
	if ok {
		t.Error("expected malformed value to be ignored")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BMMERGE_OUT", "merged.html")
	t.Setenv("BMMERGE_INTERACTIVE", "true")
	t.Setenv("BMMERGE_BOOKMARKS_ONLY", "false")
	t.Setenv("BMMERGE_DEBUG", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "merged.html" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if !cfg.Interactive {
		t.Error("Interactive not set from env")
	}
	if cfg.BookmarksOnly {
		t.Error("BookmarksOnly default not overridden")
	}
	if cfg.DebugLevel != 3 {
		t.Errorf("DebugLevel = %d", cfg.DebugLevel)
	}
}
