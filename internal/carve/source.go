package carve

import (
	"io"

	"github.com/relicio/carvex/internal/fs"
)

// fsSource adapts an fs.File, which exposes its length only via Stat, to
// the chunkSource interface ChunkReader requires.
type fsSource struct {
	fs.File
}

func (s fsSource) Size() (int64, error) {
	info, err := s.File.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// FSOpener adapts fs.Open into the opener signature NewEngine expects.
func FSOpener(path string) (chunkSource, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	return fsSource{f}, nil
}

// memSource is a closeable, sized in-memory chunkSource, used to exercise
// the engine without touching the filesystem.
type memSource struct {
	data []byte
}

func (s memSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (s memSource) Size() (int64, error) { return int64(len(s.data)), nil }

func (s memSource) Close() error { return nil }

// MemOpener returns an opener, suitable for NewEngine, that ignores its
// path argument and serves data from memory. Useful for tests and for
// embedding the engine over buffers already held in memory.
func MemOpener(data []byte) func(string) (chunkSource, error) {
	return func(string) (chunkSource, error) {
		return memSource{data}, nil
	}
}
