package carve

import (
	"fmt"
	"os"
	"path/filepath"
)

func errFileObjectShape(name string, runs int) error {
	return fmt.Errorf("file object %q has %d byte runs, expected 1", name, runs)
}

// writeExtracted creates dir/name and writes data to it. A zero-length data
// creates no file and reports failure without an error.
func writeExtracted(dir, name string, data []byte) (bool, error) {
	if len(data) == 0 {
		return false, nil
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return false, wrapErr(ErrIoWrite, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(path)
		return false, wrapErr(ErrIoWrite, err)
	}
	return true, nil
}
