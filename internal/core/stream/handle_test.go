package stream_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"iostream/internal/adapters/filesystem"
	"iostream/internal/core/domain"
	"iostream/internal/core/stream"
	"iostream/internal/ports"
	"iostream/internal/testutil"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemOpener() ports.StreamOpener {
	return filesystem.NewBillyStreamOpener(memfs.New())
}

func writeFile(t *testing.T, opener ports.StreamOpener, path string, content string) {
	t.Helper()
	h, err := stream.Open(opener, path, "w")
	require.NoError(t, err)
	if content != "" {
		n, err := h.Write([]byte(content))
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
	require.NoError(t, h.Close())
}

func readFile(t *testing.T, opener ports.StreamOpener, path string) string {
	t.Helper()
	h, err := stream.Open(opener, path, "r")
	require.NoError(t, err)
	data, err := h.Read()
	require.NoError(t, err)
	require.NoError(t, h.Close())
	return string(data)
}

func TestOpen_MissingFile_ReturnsUnopenedHandle(t *testing.T) {
	h, err := stream.Open(newMemOpener(), "/missing.txt", "r")

	require.Error(t, err)
	require.NotNil(t, h)
	assert.Equal(t, stream.StateUnopened, h.State())
	assert.True(t, h.Closed())
	assert.False(t, h.IsReadable())
	assert.False(t, h.IsWritable())
	assert.Equal(t, "/missing.txt", h.Label())
	assert.Equal(t, "r", h.Mode())
}

func TestOpen_CapabilitiesFollowMode(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/data.txt", "x")

	tests := []struct {
		mode     string
		readable bool
		writable bool
	}{
		{"r", true, false},
		{"w", false, true},
		{"a", false, true},
		{"r+", true, true},
		{"a+", true, true},
		{"rb+", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			h, err := stream.Open(opener, "/data.txt", tt.mode)
			require.NoError(t, err)
			defer h.Close()

			assert.Equal(t, stream.StateOpen, h.State())
			assert.Equal(t, tt.readable, h.IsReadable())
			assert.Equal(t, tt.writable, h.IsWritable())
		})
	}
}

func TestHandle_WriteThenRead_RoundTrip(t *testing.T) {
	opener := newMemOpener()

	writeFile(t, opener, "/hello.txt", "hello\nworld\n")

	assert.Equal(t, "hello\nworld\n", readFile(t, opener, "/hello.txt"))
}

func TestHandle_Read_SpansMultipleBlocks(t *testing.T) {
	opener := newMemOpener()
	content := strings.Repeat("0123456789", 300)
	writeFile(t, opener, "/big.txt", content)

	assert.Equal(t, content, readFile(t, opener, "/big.txt"))
}

func TestHandle_Read_EmptyFile_ReturnsEmptyNotNil(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/empty.txt", "")

	h, err := stream.Open(opener, "/empty.txt", "r")
	require.NoError(t, err)
	defer h.Close()

	data, err := h.Read()
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)

	eof, err := h.EOF()
	require.NoError(t, err)
	assert.True(t, eof)
}

func TestHandle_Write_EmptyData_WritesNothing(t *testing.T) {
	opener := newMemOpener()
	h, err := stream.Open(opener, "/f.txt", "w")
	require.NoError(t, err)

	n, err := h.Write(nil)

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	require.NoError(t, h.Close())
	assert.Equal(t, "", readFile(t, opener, "/f.txt"))
}

func TestHandle_CapabilityMismatch(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/f.txt", "abc")

	reader, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	defer reader.Close()
	writer, err := stream.Open(opener, "/g.txt", "w")
	require.NoError(t, err)
	defer writer.Close()

	_, err = reader.Write([]byte("x"))
	assert.ErrorIs(t, err, domain.ErrNotOpenedForWriting)
	assert.ErrorIs(t, err, domain.ErrIOError)
	assert.ErrorIs(t, reader.Putc('x'), domain.ErrNotOpenedForWriting)
	_, err = reader.Flush()
	assert.ErrorIs(t, err, domain.ErrNotOpenedForWriting)

	_, err = writer.Read()
	assert.ErrorIs(t, err, domain.ErrNotOpenedForReading)
	_, err = writer.ReadN(1)
	assert.ErrorIs(t, err, domain.ErrNotOpenedForReading)
	_, _, err = writer.Getc()
	assert.ErrorIs(t, err, domain.ErrNotOpenedForReading)
	_, _, err = writer.Gets()
	assert.ErrorIs(t, err, domain.ErrNotOpenedForReading)
	_, err = writer.EOF()
	assert.ErrorIs(t, err, domain.ErrNotOpenedForReading)

	data, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data), "rejected operations must not touch the stream")
}

func TestHandle_Close_Twice_FailsWithClosedStream(t *testing.T) {
	h, err := stream.Open(newMemOpener(), "/f.txt", "w")
	require.NoError(t, err)

	require.NoError(t, h.Close())
	err = h.Close()

	assert.ErrorIs(t, err, domain.ErrClosedStream)
	assert.Equal(t, "IOError: closed stream", err.Error())
	assert.Equal(t, stream.StateClosed, h.State())
	assert.True(t, h.Closed())
}

func TestHandle_Close_Unopened_FailsWithClosedStream(t *testing.T) {
	h := stream.New()

	assert.ErrorIs(t, h.Close(), domain.ErrClosedStream)
	assert.Equal(t, stream.StateUnopened, h.State())
}

func TestHandle_ClosedHandle_RejectsEverything(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/f.txt", "abc")
	h, err := stream.Open(opener, "/f.txt", "r+")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	_, err = h.Read()
	assert.ErrorIs(t, err, domain.ErrNotOpenedForReading)
	_, err = h.Write([]byte("x"))
	assert.ErrorIs(t, err, domain.ErrNotOpenedForWriting)
	_, err = h.Sync()
	assert.ErrorIs(t, err, domain.ErrClosedStream)
	assert.ErrorIs(t, h.SetSync(true), domain.ErrClosedStream)
	assert.False(t, h.IsReadable())
	assert.False(t, h.IsWritable())
}

func TestHandle_ReadN(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/f.txt", "abcdef")
	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	defer h.Close()

	data, err := h.ReadN(4)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(data))

	data, err = h.ReadN(4)
	require.NoError(t, err)
	assert.Equal(t, "ef", string(data))

	data, err = h.ReadN(4)
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)

	data, err = h.ReadN(0)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestHandle_ReadN_HugeLengthReadsToEnd(t *testing.T) {
	opener := newMemOpener()
	content := strings.Repeat("z", 3*stream.BlockSize+5)
	writeFile(t, opener, "/f.txt", content)
	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	defer h.Close()

	var data []byte
	require.NotPanics(t, func() {
		data, err = h.ReadN(math.MaxInt)
	})

	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	eof, err := h.EOF()
	require.NoError(t, err)
	assert.True(t, eof)
}

func TestHandle_ReadN_StopsOnStreamFailure(t *testing.T) {
	s := new(testutil.MockStream)
	opener := new(testutil.MockStreamOpener)
	opener.On("Open", "/f.txt", "r").Return(s, nil)
	s.On("ReadBlock", mock.Anything).Return(0, errors.New("io failure")).Once()

	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	data, err := h.ReadN(10)

	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
	s.AssertExpectations(t)
}

func TestHandle_ReadN_NegativeLength_CheckedBeforeState(t *testing.T) {
	h := stream.New()

	_, err := h.ReadN(-1)

	assert.ErrorIs(t, err, domain.ErrArgumentError)
	assert.False(t, errors.Is(err, domain.ErrIOError))
	assert.Equal(t, "ArgumentError: negative length -1 given", err.Error())
}

func TestHandle_Getc(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/f.txt", "ab")
	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	defer h.Close()

	var got []byte
	for {
		b, ok, err := h.Getc()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, b)
	}

	assert.Equal(t, "ab", string(got))
	eof, err := h.EOF()
	require.NoError(t, err)
	assert.True(t, eof)
}

func TestHandle_Gets(t *testing.T) {
	opener := newMemOpener()
	writeFile(t, opener, "/f.txt", "one\ntwo\nthree")
	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	defer h.Close()

	var lines []string
	for {
		line, ok, err := h.Gets()
		require.NoError(t, err)
		if !ok {
			break
		}
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"one\n", "two\n", "three"}, lines)
}

func TestHandle_Gets_LongLineIsSplit(t *testing.T) {
	opener := newMemOpener()
	line := strings.Repeat("x", 2000) + "\n"
	writeFile(t, opener, "/f.txt", line)
	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	defer h.Close()

	first, ok, err := h.Gets()
	require.NoError(t, err)
	require.True(t, ok)
	second, ok, err := h.Gets()
	require.NoError(t, err)
	require.True(t, ok)

	assert.Len(t, first, stream.LineBufferSize-1)
	assert.Equal(t, line, first+second)
}

func TestHandle_ReadLine_Unbounded(t *testing.T) {
	opener := newMemOpener()
	line := strings.Repeat("y", 5000) + "\n"
	writeFile(t, opener, "/f.txt", line+"tail")
	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	defer h.Close()

	got, ok, err := h.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, line, got)

	got, ok, err = h.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tail", got)

	_, ok, err = h.ReadLine()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandle_Putc(t *testing.T) {
	opener := newMemOpener()
	h, err := stream.Open(opener, "/f.txt", "w")
	require.NoError(t, err)

	for _, b := range []byte("hey") {
		require.NoError(t, h.Putc(b))
	}
	require.NoError(t, h.Close())

	assert.Equal(t, "hey", readFile(t, opener, "/f.txt"))
}

func TestHandle_Flush_MakesWritesVisible(t *testing.T) {
	opener := newMemOpener()
	h, err := stream.Open(opener, "/f.txt", "w")
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Write([]byte("pending"))
	require.NoError(t, err)
	assert.Equal(t, "", readFile(t, opener, "/f.txt"))

	flushed, err := h.Flush()
	require.NoError(t, err)
	assert.Same(t, h, flushed)
	assert.Equal(t, "pending", readFile(t, opener, "/f.txt"))
}

func TestHandle_SetSync_FlushesEveryWrite(t *testing.T) {
	opener := newMemOpener()
	h, err := stream.Open(opener, "/f.txt", "w")
	require.NoError(t, err)
	defer h.Close()

	sync, err := h.Sync()
	require.NoError(t, err)
	assert.False(t, sync)

	require.NoError(t, h.SetSync(true))
	sync, err = h.Sync()
	require.NoError(t, err)
	assert.True(t, sync)

	_, err = h.Write([]byte("now"))
	require.NoError(t, err)
	require.NoError(t, h.Putc('!'))

	assert.Equal(t, "now!", readFile(t, opener, "/f.txt"))
}

func TestHandle_Write_StreamFailure_ReturnsZeroRecords(t *testing.T) {
	s := new(testutil.MockStream)
	opener := new(testutil.MockStreamOpener)
	opener.On("Open", "/f.txt", "w").Return(s, nil)
	s.On("WriteBlock", []byte("data")).Return(0, errors.New("disk full"))

	h, err := stream.Open(opener, "/f.txt", "w")
	require.NoError(t, err)
	n, err := h.Write([]byte("data"))

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	s.AssertExpectations(t)
}

func TestHandle_Close_StreamFailure_StillCloses(t *testing.T) {
	s := new(testutil.MockStream)
	opener := new(testutil.MockStreamOpener)
	opener.On("Open", "/f.txt", "r").Return(s, nil)
	s.On("Close").Return(errors.New("close failed"))

	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)

	require.NoError(t, h.Close())
	assert.True(t, h.Closed())
	assert.Equal(t, stream.StateClosed, h.State())
}

func TestHandle_Read_StopsOnStreamFailure(t *testing.T) {
	s := new(testutil.MockStream)
	opener := new(testutil.MockStreamOpener)
	opener.On("Open", "/f.txt", "r").Return(s, nil)
	s.On("ReadBlock", mock.Anything).Return(0, errors.New("io failure")).Once()

	h, err := stream.Open(opener, "/f.txt", "r")
	require.NoError(t, err)
	data, err := h.Read()

	require.NoError(t, err)
	assert.Empty(t, data)
	s.AssertExpectations(t)
}

func TestHandle_Release_ReturnsStreamCloseError(t *testing.T) {
	s := new(testutil.MockStream)
	opener := new(testutil.MockStreamOpener)
	opener.On("Open", "/f.txt", "w").Return(s, nil)
	s.On("Close").Return(errors.New("close failed")).Once()

	h, err := stream.Open(opener, "/f.txt", "w")
	require.NoError(t, err)

	assert.EqualError(t, h.Release(), "close failed")
	assert.Equal(t, stream.StateClosed, h.State())
	assert.NoError(t, h.Release())
	s.AssertExpectations(t)
}
