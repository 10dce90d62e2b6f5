package reader

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func TestMultiReadSeekerRandomSeek(t *testing.T) {
	testReadSeeker(t, func(data []byte) io.ReadSeeker {
		n := len(data)

		var (
			readers []io.ReadSeeker
			sizes   []int64
		)

		size := 0
		for size < n {
			sz := min(
				rand.Intn(1024)+1,
				n-size,
			)

			chunk := data[size : size+sz]
			readers = append(readers, bytes.NewReader(chunk))

			sizes = append(sizes, int64(sz))
			size += sz
		}
		return NewMultiReadSeeker(readers, sizes)
	})
}

func TestMultiReadSeekerReadAt(t *testing.T) {
	data := GenerateRandomBuffer(1024 * 10)

	var (
		readers []io.ReadSeeker
		sizes   []int64
	)
	size := 0
	for size < len(data) {
		sz := min(rand.Intn(1024)+1, len(data)-size)
		readers = append(readers, bytes.NewReader(data[size:size+sz]))
		sizes = append(sizes, int64(sz))
		size += sz
	}

	mrs := NewMultiReadSeeker(readers, sizes)

	for i := 0; i < 200; i++ {
		offset := rand.Intn(len(data))
		maxLen := len(data) - offset
		readLen := min(rand.Intn(64)+1, maxLen)

		buf := make([]byte, readLen)
		n, err := mrs.ReadAt(buf, int64(offset))
		if err != nil && err != io.EOF {
			t.Fatalf("trial %d: ReadAt(%d) failed: %v", i, offset, err)
		}

		if !bytes.Equal(buf[:n], data[offset:offset+n]) {
			t.Errorf("trial %d: mismatch at offset %d", i, offset)
		}
	}
}
