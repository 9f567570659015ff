package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jotkit/jot/internal/editor"
	"github.com/jotkit/jot/internal/errors"
	"github.com/jotkit/jot/internal/tabs"
)

func TestStatePath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvConfigDir, tmpDir)

	path, err := StatePath()
	if err != nil {
		t.Fatalf("StatePath() failed: %v", err)
	}
	if path != filepath.Join(tmpDir, "state.json") {
		t.Errorf("Expected state path under app dir, got %q", path)
	}
}

func TestLoadState_Missing(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	ring, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}

	if diff := cmp.Diff(tabs.New(), ring); diff != "" {
		t.Errorf("Missing state should yield a fresh ring (-want +got):\n%s", diff)
	}
}

func TestSaveState_RoundTrip(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	ring := tabs.New()
	for _, a := range []tabs.Action{
		tabs.Edit{Action: editor.Change{Text: "groceries\nmilk, eggs"}},
		tabs.NewTab{},
		tabs.Edit{Action: editor.Change{Text: "meeting notes"}},
		tabs.NewTab{},
		tabs.Navigate{Direction: -1},
	} {
		next, err := tabs.Apply(ring, a)
		if err != nil {
			t.Fatalf("Apply(%T) failed: %v", a, err)
		}
		ring = next
	}

	if err := SaveState(ring); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	loaded, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}

	if diff := cmp.Diff(ring, loaded); diff != "" {
		t.Errorf("State round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveState_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "deep", "nested")
	t.Setenv(EnvConfigDir, nested)

	if err := SaveState(tabs.New()); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(nested, "state.json")); err != nil {
		t.Errorf("SaveState() should create the app directory: %v", err)
	}
}

func TestLoadState_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvConfigDir, tmpDir)

	stateFile := filepath.Join(tmpDir, "state.json")
	if err := os.WriteFile(stateFile, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	_, err := LoadState()
	if err == nil {
		t.Fatal("LoadState() should fail on malformed data")
	}
	if !errors.Is(err, errors.KindMalformedData) {
		t.Errorf("Expected KindMalformedData error, got %v", err)
	}
}

func TestLoadState_MissingField(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvConfigDir, tmpDir)

	// Valid JSON, wrong shape: currentTab is required
	stateFile := filepath.Join(tmpDir, "state.json")
	payload := `{"leftTabs": [], "rightTabs": []}`
	if err := os.WriteFile(stateFile, []byte(payload), 0644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	_, err := LoadState()
	if !errors.Is(err, errors.KindMalformedData) {
		t.Errorf("Expected KindMalformedData error, got %v", err)
	}
}

func TestBackupCorruptState(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvConfigDir, tmpDir)

	stateFile := filepath.Join(tmpDir, "state.json")
	if err := os.WriteFile(stateFile, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	backup, err := BackupCorruptState()
	if err != nil {
		t.Fatalf("BackupCorruptState() failed: %v", err)
	}
	if !strings.HasSuffix(backup, "state.json.corrupt") {
		t.Errorf("Expected backup path ending in state.json.corrupt, got %q", backup)
	}

	// Original is gone, backup holds the old bytes
	if _, err := os.Stat(stateFile); !os.IsNotExist(err) {
		t.Error("Original state file should be gone after backup")
	}
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}
	if string(data) != "{not json" {
		t.Errorf("Backup should preserve original bytes, got %q", data)
	}

	// A fresh load now starts over cleanly
	ring, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState() after backup failed: %v", err)
	}
	if diff := cmp.Diff(tabs.New(), ring); diff != "" {
		t.Errorf("Expected fresh ring after backup (-want +got):\n%s", diff)
	}
}

func TestBackupCorruptState_NothingToMove(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	backup, err := BackupCorruptState()
	if err != nil {
		t.Fatalf("BackupCorruptState() failed: %v", err)
	}
	if backup != "" {
		t.Errorf("Expected empty backup path when no state file exists, got %q", backup)
	}
}
