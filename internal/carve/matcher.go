package carve

import "bytes"

// matchPrefix reports whether pattern occurs at the start of buf.
func matchPrefix(buf, pattern []byte) bool {
	return len(buf) >= len(pattern) && bytes.Equal(buf[:len(pattern)], pattern)
}

// find returns the leftmost index at which pattern occurs in buf. An empty
// pattern or one longer than buf never matches; callers are responsible
// for not searching with an empty pattern.
func find(buf, pattern []byte) (int, bool) {
	if len(pattern) == 0 || len(pattern) > len(buf) {
		return 0, false
	}
	idx := bytes.Index(buf, pattern)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
