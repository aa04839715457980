package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"iostream/internal/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDir creates a unique test directory within ~/.iostream/ and returns its path.
// The directory is automatically cleaned up when the test completes.
func testDir(t *testing.T) string {
	t.Helper()
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}
	dir := filepath.Join(home, ".iostream", "test-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestExpandPath(t *testing.T) {
	home := "/home/user"

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"tilde with path", "~/.iostream/current-context", "/home/user/.iostream/current-context"},
		{"tilde only", "~", "/home/user"},
		{"absolute path unchanged", "/etc/passwd", "/etc/passwd"},
		{"tilde in middle unchanged", "/some/~/path", "/some/~/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.path, home))
		})
	}
}

func TestValidatePath_AllowsStateLocations(t *testing.T) {
	tests := []string{
		"~/.iostream",
		"~/.iostream/current-context",
		"~/.iostream/nested/dir/file",
		"~/.iostream-config.yaml",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := validatePath(path)
			assert.NoError(t, err)
		})
	}
}

func TestValidatePath_DeniesPathsOutsideStateLocations(t *testing.T) {
	tests := []string{
		"",
		"~/",
		"~/.config/something",
		"/etc/passwd",
		"~/.iostream/../.ssh/id_rsa",
		"~/.iostream-other/config",
		"~/.iostream-config.yaml/something",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := validatePath(path)
			assert.True(t, errors.Is(err, ErrAccessDenied), "validatePath(%q) = %v", path, err)
		})
	}
}

func TestValidatePath_DeniesSymlinkEscape(t *testing.T) {
	dir := testDir(t)
	symlinkPath := filepath.Join(dir, "escape-link")
	if err := os.Symlink(os.TempDir(), symlinkPath); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	_, err := validatePath(filepath.Join(symlinkPath, "secret.txt"))

	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestOsFileSystem_ReadWriteRoundTrip(t *testing.T) {
	fs := ProvideOsFileSystem()
	testFile := filepath.Join(testDir(t), "nested", "state.txt")

	require.NoError(t, fs.WriteFile(testFile, []byte("state"), ports.ReadWrite))

	exists, err := fs.FileExists(testFile)
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "state", string(content))

	require.NoError(t, fs.RemoveFile(testFile))
	exists, err = fs.FileExists(testFile)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOsFileSystem_AllMethods_DenyAccessOutsideStateDir(t *testing.T) {
	fs := ProvideOsFileSystem()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"ReadFile", func() error { _, err := fs.ReadFile("/etc/passwd"); return err }},
		{"WriteFile", func() error { return fs.WriteFile("/tmp/test-file", []byte("x"), ports.ReadWrite) }},
		{"FileExists", func() error { _, err := fs.FileExists("/etc/passwd"); return err }},
		{"EnsureDirExists", func() error { return fs.EnsureDirExists("/tmp/test-dir/file") }},
		{"RemoveFile", func() error { return fs.RemoveFile("/tmp/test-file") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.fn(), ErrAccessDenied))
		})
	}
}

func TestOsFileSystem_WriteFile_AccessModes(t *testing.T) {
	fs := ProvideOsFileSystem()
	dir := testDir(t)

	tests := []struct {
		name     string
		mode     ports.AccessMode
		expected os.FileMode
	}{
		{"read write", ports.ReadWrite, 0600},
		{"read all write owner", ports.ReadAllWriteOwner, 0644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(dir, uuid.NewString())
			require.NoError(t, fs.WriteFile(testFile, []byte("test"), tt.mode))

			info, err := os.Stat(testFile)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, info.Mode().Perm())
		})
	}
}
