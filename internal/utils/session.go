package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/rampa/internal/models"
)

func getSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "rampa")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "current_workout.toml"), nil
}

// SaveSessionState persists the working workout between command invocations.
func SaveSessionState(w *models.Workout) error {
	path, err := getSessionPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(w.State())
}

// LoadSessionState reads the working workout back from disk.
func LoadSessionState() (*models.Workout, error) {
	path, err := getSessionPath()
	if err != nil {
		return nil, err
	}

	var state models.WorkoutState
	_, err = toml.DecodeFile(path, &state)
	if err != nil {
		return nil, err
	}

	return models.WorkoutFromState(&state)
}

func ClearSessionState() error {
	path, err := getSessionPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func SessionExists() bool {
	path, err := getSessionPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
