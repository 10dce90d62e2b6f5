package carve_test

import (
	"testing"

	"github.com/relicio/carvex/internal/carve"
	"github.com/stretchr/testify/require"
)

func TestRegistryMatchHeaderTieBreakIsInsertionOrder(t *testing.T) {
	r := carve.NewRegistry()
	r.Add(carve.Signature{Name: "ZIP", Header: []byte{0x50, 0x4B, 0x03, 0x04}})
	r.Add(carve.Signature{Name: "DOCX", Header: []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00}})

	buf := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00, 0xFF}

	sig, ok := r.MatchHeader(buf)
	require.True(t, ok)
	require.Equal(t, "ZIP", sig.Name, "first registered prefix match wins regardless of header length")
}

func TestRegistryMatchHeaderNoMatch(t *testing.T) {
	r := carve.NewBuiltinRegistry()

	_, ok := r.MatchHeader([]byte{0x00, 0x01, 0x02})
	require.False(t, ok)
}

func TestRegistryGet(t *testing.T) {
	r := carve.NewBuiltinRegistry()

	sig, ok := r.Get("PNG")
	require.True(t, ok)
	require.Equal(t, ".png", sig.Extension)

	_, ok = r.Get("NOT_A_FORMAT")
	require.False(t, ok)
}

func TestBuiltinRegistryOrderPutsZipBeforeDocx(t *testing.T) {
	r := carve.NewBuiltinRegistry()

	sigs := r.Signatures()
	zipIdx, docxIdx := -1, -1
	for i, s := range sigs {
		switch s.Name {
		case "ZIP":
			zipIdx = i
		case "DOCX":
			docxIdx = i
		}
	}

	require.GreaterOrEqual(t, zipIdx, 0)
	require.GreaterOrEqual(t, docxIdx, 0)
	require.Less(t, zipIdx, docxIdx)
}
