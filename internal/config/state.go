package config

import (
	"os"
	"path/filepath"

	"github.com/jotkit/jot/internal/errors"
	"github.com/jotkit/jot/internal/tabs"
)

// StatePath returns the path to the persisted tab-ring state file.
func StatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// LoadState reads the persisted tab ring from disk. A missing file
// yields a fresh ring; unreadable or malformed data is surfaced to the
// caller, which decides whether to back the file up and start over.
func LoadState() (tabs.Ring, error) {
	path, err := StatePath()
	if err != nil {
		return tabs.Ring{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tabs.New(), nil
	}
	if err != nil {
		return tabs.Ring{}, errors.StateLoadFailed(path, err)
	}

	return tabs.Unmarshal(data)
}

// SaveState writes the tab ring to disk in its wire form.
func SaveState(r tabs.Ring) error {
	path, err := StatePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.StateSaveFailed(path, err)
	}

	data, err := tabs.Marshal(r)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.StateSaveFailed(path, err)
	}
	return nil
}

// BackupCorruptState moves a malformed state file aside so a fresh one
// can be written without destroying what was on disk. It returns the
// backup path, or "" when there was no state file to move.
func BackupCorruptState() (string, error) {
	path, err := StatePath()
	if err != nil {
		return "", err
	}

	backup := path + ".corrupt"
	if err := os.Rename(path, backup); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.StateSaveFailed(backup, err)
	}
	return backup, nil
}
