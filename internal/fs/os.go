package fs

import "os"

// Open opens path for reading. Inputs are always regular files or named
// pipes supporting random access; raw block-device paths are not
// supported.
func Open(path string) (File, error) {
	return os.Open(path)
}
