package carve

import (
	"io"
	"os"

	"github.com/relicio/carvex/pkg/reader"
)

// multiFileSource concatenates several regular files into one logical byte
// stream, so a single Engine run can carve across input split into
// fragments (e.g. sequential disk-image segments) without first joining
// them on disk.
type multiFileSource struct {
	files []*os.File
	mrs   *reader.MultiReadSeeker
	size  int64
}

// OpenMultiSource opens every path in order and returns a chunkSource
// presenting their concatenation. Closing it closes every underlying file.
func OpenMultiSource(paths []string) (chunkSource, error) {
	files := make([]*os.File, 0, len(paths))
	readers := make([]io.ReadSeeker, 0, len(paths))
	sizes := make([]int64, 0, len(paths))

	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, err
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			for _, opened := range files {
				opened.Close()
			}
			return nil, err
		}

		files = append(files, f)
		readers = append(readers, f)
		sizes = append(sizes, info.Size())
	}

	total := int64(0)
	for _, s := range sizes {
		total += s
	}

	return &multiFileSource{
		files: files,
		mrs:   reader.NewMultiReadSeeker(readers, sizes),
		size:  total,
	}, nil
}

func (s *multiFileSource) ReadAt(p []byte, off int64) (int, error) {
	return s.mrs.ReadAt(p, off)
}

func (s *multiFileSource) Size() (int64, error) {
	return s.size, nil
}

// MultiOpener returns an opener, suitable for NewEngine, that ignores its
// path argument and concatenates paths via OpenMultiSource instead.
func MultiOpener(paths []string) func(string) (chunkSource, error) {
	return func(string) (chunkSource, error) {
		return OpenMultiSource(paths)
	}
}

func (s *multiFileSource) Close() error {
	var first error
	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
