package stream_test

import (
	"testing"

	"iostream/internal/core/domain"
	"iostream/internal/core/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFile_MissingPath_RecordsPathAndError(t *testing.T) {
	f := stream.NewFile(newMemOpener(), "/nope.txt", "r")

	assert.Error(t, f.OpenErr())
	assert.Equal(t, "/nope.txt", f.Path())
	assert.Equal(t, "r", f.Mode())
	assert.True(t, f.Closed())
	assert.Equal(t, stream.StateUnopened, f.State())
}

func TestNewFile_ExistingPath(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/a.txt", "content")

	f := stream.NewFile(opener, "/a.txt", "r")
	defer f.Close()

	require.NoError(t, f.OpenErr())
	assert.Equal(t, "/a.txt", f.Path())
	data, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestFile_Initialize_AfterFailedOpen_CanRetry(t *testing.T) {
	opener := newMemOpener()
	f := stream.NewFile(opener, "/later.txt", "r")
	require.Error(t, f.OpenErr())

	writeFile(t, opener, "/later.txt", "ready")
	require.NoError(t, f.Initialize("/later.txt", "r"))
	defer f.Close()

	require.NoError(t, f.OpenErr())
	assert.Equal(t, stream.StateOpen, f.State())
}

func TestFile_Initialize_OpenFile_FailsWithReinitialize(t *testing.T) {
	f := stream.NewFile(newMemOpener(), "/a.txt", "w")
	defer f.Close()

	err := f.Initialize("/b.txt", "w")

	assert.ErrorIs(t, err, domain.ErrReinitializeFile)
	assert.ErrorIs(t, err, domain.ErrRuntimeError)
	assert.Equal(t, "/a.txt", f.Path())
}

func TestFile_Initialize_ClosedFile_FailsWithReinitializeClosed(t *testing.T) {
	f := stream.NewFile(newMemOpener(), "/a.txt", "w")
	require.NoError(t, f.Close())

	err := f.Initialize("/a.txt", "w")

	assert.ErrorIs(t, err, domain.ErrReinitializeClosedFile)
	assert.Equal(t, "RuntimeError: reinitializing closed File", err.Error())
}

func TestFile_AllocFile_IsUnopened(t *testing.T) {
	f := stream.AllocFile(newMemOpener())

	assert.Equal(t, stream.StateUnopened, f.State())
	assert.Equal(t, "", f.Path())
	assert.NoError(t, f.OpenErr())
}

func TestExists(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/here.txt", "")

	assert.True(t, stream.Exists(opener, "/here.txt"))
	assert.False(t, stream.Exists(opener, "/gone.txt"))
}
