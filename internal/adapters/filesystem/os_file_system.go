package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"iostream/internal/ports"
)

// ErrAccessDenied is returned for paths outside the iostream state locations.
var ErrAccessDenied = errors.New("access denied: path outside of ~/.iostream")

const (
	stateDirName   = ".iostream"
	configFileName = ".iostream-config.yaml"
)

var _ ports.FileSystem = (*OsFileSystem)(nil)

// OsFileSystem reads and writes the tool's own state: the config file and
// everything below ~/.iostream. User files are never touched through it.
type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	resolved, err := validatePath(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(resolved)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to ensure directory exists: %w", err)
	}

	if err := os.WriteFile(resolved, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) EnsureDirExists(path string) error {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	resolved, err := validatePath(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(resolved)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) RemoveFile(path string) error {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(resolved); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// validatePath expands and cleans path and allows it only when it is the
// config file or lies within ~/.iostream, after resolving symlinks of the
// longest existing prefix.
func validatePath(path string) (string, error) {
	if path == "" {
		return "", ErrAccessDenied
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	resolved, err := resolveSymlinks(filepath.Clean(expandPath(path, home)))
	if err != nil {
		return "", err
	}
	resolvedHome, err := resolveSymlinks(home)
	if err != nil {
		return "", err
	}

	stateDir := filepath.Join(resolvedHome, stateDirName)
	configFile := filepath.Join(resolvedHome, configFileName)
	if resolved == configFile || resolved == stateDir || strings.HasPrefix(resolved, stateDir+string(filepath.Separator)) {
		return resolved, nil
	}
	return "", fmt.Errorf("%w: %s", ErrAccessDenied, path)
}

// resolveSymlinks evaluates symlinks for the longest existing prefix of path
// and re-appends the part that does not exist yet.
func resolveSymlinks(path string) (string, error) {
	existing := path
	var rest []string
	for {
		evaluated, err := filepath.EvalSymlinks(existing)
		if err == nil {
			parts := append([]string{evaluated}, rest...)
			return filepath.Join(parts...), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to resolve %s: %w", existing, err)
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return path, nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}
