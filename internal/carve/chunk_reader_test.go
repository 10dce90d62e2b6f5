package carve_test

import (
	"io"
	"testing"

	"github.com/relicio/carvex/internal/carve"
	"github.com/stretchr/testify/require"
)

func TestChunkReaderStreamsWithoutGaps(t *testing.T) {
	data := make([]byte, 10*1024)
	for i := range data {
		data[i] = byte(i)
	}

	reader, err := carve.OpenChunkReader(carve.MemOpener(data), "", 1024, 64)
	require.NoError(t, err)
	defer reader.Close()

	require.Equal(t, int64(len(data)), reader.Size())

	var rebuilt []byte
	var lastBase int64 = -1
	for {
		window, base, newBytes, err := reader.ReadChunk()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.GreaterOrEqual(t, base, lastBase, "base offsets must be nondecreasing")
		lastBase = base
		require.Equal(t, data[base:base+int64(len(window))], window, "window must match the source at its reported base")

		if len(rebuilt) == 0 {
			rebuilt = append(rebuilt, window...)
		} else {
			rebuilt = append(rebuilt, window[len(window)-newBytes:]...)
		}
	}

	require.Equal(t, data, rebuilt, "concatenating each window's new bytes must reconstruct the whole input")
}

func TestChunkReaderOverlapCarriesHeaderAcrossBoundary(t *testing.T) {
	// Place a 6-byte header straddling a chunk boundary: chunk size 100,
	// header starts at offset 97.
	data := make([]byte, 300)
	header := []byte("RAR!\x1A\x07")
	copy(data[97:], header)

	reader, err := carve.OpenChunkReader(carve.MemOpener(data), "", 100, 16)
	require.NoError(t, err)
	defer reader.Close()

	found := false
	for {
		window, base, _, err := reader.ReadChunk()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		for i := 0; i+len(header) <= len(window); i++ {
			if string(window[i:i+len(header)]) == string(header) && base+int64(i) == 97 {
				found = true
			}
		}
	}
	require.True(t, found, "header straddling a chunk boundary must appear intact in some window")
}

func TestChunkReaderReadAtDoesNotDisturbCursor(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	reader, err := carve.OpenChunkReader(carve.MemOpener(data), "", 1024, 64)
	require.NoError(t, err)
	defer reader.Close()

	window1, _, _, err := reader.ReadChunk()
	require.NoError(t, err)
	require.Equal(t, data, window1)

	got, err := reader.ReadAt(4, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("quick"), got)

	_, _, _, err = reader.ReadChunk()
	require.ErrorIs(t, err, io.EOF, "random access read must not rewind or advance the streaming cursor")
}

func TestChunkReaderReadAtClampsToInputLength(t *testing.T) {
	data := []byte("0123456789")

	reader, err := carve.OpenChunkReader(carve.MemOpener(data), "", 1024, 64)
	require.NoError(t, err)
	defer reader.Close()

	got, err := reader.ReadAt(8, 100)
	require.NoError(t, err)
	require.Equal(t, []byte("89"), got)

	got, err = reader.ReadAt(20, 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestChunkReaderRejectsUnopenable(t *testing.T) {
	_, err := carve.OpenChunkReader(carve.FSOpener, "/nonexistent/path/does-not-exist", 1024, 64)
	require.Error(t, err)
	require.ErrorIs(t, err, carve.ErrIoOpen)
}
