package carve_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/relicio/carvex/internal/carve"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVCatalogue(t *testing.T) {
	results := []carve.CarvedFile{
		{Type: "JPEG", StartOffset: 0, EndOffset: 100, FileSize: 100, HasValidFooter: true, Extracted: true, Filename: "JPEG_000000.jpg"},
		{Type: "PNG", StartOffset: 200, EndOffset: 350, FileSize: 150, HasValidFooter: false, Extracted: false, Filename: "PNG_000000.png"},
	}

	var buf bytes.Buffer
	require.NoError(t, carve.WriteCSVCatalogue(&buf, results))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Filename", "Type", "StartOffset", "EndOffset", "FileSize", "HasValidFooter", "Extracted"}, rows[0])
	require.Equal(t, []string{"JPEG_000000.jpg", "JPEG", "0", "100", "100", "true", "true"}, rows[1])
	require.Equal(t, []string{"PNG_000000.png", "PNG", "200", "350", "150", "false", "false"}, rows[2])
}

func TestWriteCSVCatalogueEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, carve.WriteCSVCatalogue(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
