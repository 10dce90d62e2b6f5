package carve

import (
	"io"
)

const (
	// DefaultChunkSize is the default size, in bytes, of the new data read
	// by each ReadChunk call (not counting the retained overlap tail).
	DefaultChunkSize = 64 * 1024
	// DefaultOverlapSize is the default inter-chunk retention.
	DefaultOverlapSize = 4 * 1024
	// MinChunkSize is the smallest chunk size ChunkReader will accept.
	MinChunkSize = 1024
)

// chunkSource is the minimal surface ChunkReader needs from an open input:
// sized, positional reads, and a way to release the underlying handle.
type chunkSource interface {
	io.ReaderAt
	io.Closer
	Size() (int64, error)
}

// ChunkReader presents an ordered byte stream as a sequence of overlapping
// windows, so that any header of length <= overlapSize+1 spanning two
// adjacent reads is detectable within a single window, plus a random-access
// read primitive used for footer search and extraction.
//
// ChunkReader owns its source exclusively; there is no concurrent reader.
// Streaming and random-access reads never contend because both go through
// io.ReaderAt.ReadAt, which does not mutate shared file-position state.
type ChunkReader struct {
	src  chunkSource
	size int64

	cursor      int64
	chunkSize   int
	overlapSize int
	tail        []byte

	bytesRead int64
	chunks    int
}

// OpenChunkReader opens path and binds a ChunkReader to it with the given
// chunk and overlap sizes. Returns an error wrapping ErrIoOpen if the
// source cannot be opened or sized.
func OpenChunkReader(opener func(string) (chunkSource, error), path string, chunkSize, overlapSize int) (*ChunkReader, error) {
	src, err := opener(path)
	if err != nil {
		return nil, wrapErr(ErrIoOpen, err)
	}

	size, err := src.Size()
	if err != nil {
		src.Close()
		return nil, wrapErr(ErrIoOpen, err)
	}

	return &ChunkReader{
		src:         src,
		size:        size,
		chunkSize:   chunkSize,
		overlapSize: overlapSize,
	}, nil
}

// Size returns the total length of the input, as determined at open time.
func (c *ChunkReader) Size() int64 {
	return c.size
}

// Close releases the underlying source.
func (c *ChunkReader) Close() error {
	return c.src.Close()
}

// ReadChunk returns the next overlapping window along with the absolute
// offset of its first byte and the count of newly-read bytes in it (used
// by callers to account bytes_processed without double-counting the
// retained overlap). Returns io.EOF once the cursor reaches the end of the
// input and no overlap remains to redeliver.
func (c *ChunkReader) ReadChunk() (window []byte, base int64, newBytes int, err error) {
	if c.cursor >= c.size {
		return nil, 0, 0, io.EOF
	}

	base = c.cursor - int64(len(c.tail))

	toRead := int64(c.chunkSize)
	if remaining := c.size - c.cursor; toRead > remaining {
		toRead = remaining
	}

	fresh := make([]byte, toRead)
	n, err := c.src.ReadAt(fresh, c.cursor)
	if err != nil && err != io.EOF {
		return nil, 0, 0, wrapErr(ErrIoRead, err)
	}
	fresh = fresh[:n]

	window = make([]byte, 0, len(c.tail)+n)
	window = append(window, c.tail...)
	window = append(window, fresh...)

	c.cursor += int64(n)
	c.bytesRead += int64(n)
	c.chunks++

	if c.cursor < c.size {
		overlap := c.overlapSize
		if overlap > len(window) {
			overlap = len(window)
		}
		c.tail = append([]byte(nil), window[len(window)-overlap:]...)
	} else {
		c.tail = nil
	}

	return window, base, n, nil
}

// ReadAt performs a random-access read used by footer search and
// extraction. It returns at most min(maxBytes, size-offset) bytes and does
// not disturb the streaming cursor or retained overlap tail.
func (c *ChunkReader) ReadAt(offset int64, maxBytes int) ([]byte, error) {
	if offset < 0 || offset >= c.size || maxBytes <= 0 {
		return nil, nil
	}

	n := int64(maxBytes)
	if offset+n > c.size {
		n = c.size - offset
	}

	buf := make([]byte, n)
	m, err := c.src.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return nil, wrapErr(ErrIoRead, err)
	}
	return buf[:m], nil
}

// Seek repositions the streaming cursor and discards the overlap tail. Not
// used by the engine's main loop; provided for completeness.
func (c *ChunkReader) Seek(offset int64) {
	if offset < 0 {
		offset = 0
	}
	if offset > c.size {
		offset = c.size
	}
	c.cursor = offset
	c.tail = nil
}

// Progress returns the fraction of the input consumed so far, in [0, 100].
func (c *ChunkReader) Progress() float64 {
	if c.size == 0 {
		return 0
	}
	return 100 * float64(c.cursor) / float64(c.size)
}

// Stats returns the total bytes read from the source and the number of
// ReadChunk calls that produced data.
func (c *ChunkReader) Stats() (bytesRead int64, chunks int) {
	return c.bytesRead, c.chunks
}
