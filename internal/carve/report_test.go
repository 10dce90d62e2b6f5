package carve_test

import (
	"bytes"
	"testing"

	"github.com/relicio/carvex/internal/carve"
	"github.com/relicio/carvex/pkg/dfxml"
	"github.com/stretchr/testify/require"
)

func TestCarvedFileToFromFileObjectRoundTrip(t *testing.T) {
	cf := carve.CarvedFile{
		Type:           "PNG",
		StartOffset:    1024,
		EndOffset:      2048,
		FileSize:       1024,
		HasValidFooter: true,
		Extracted:      true,
		Filename:       "PNG_000000.png",
	}

	fo := cf.ToFileObject()
	require.Equal(t, cf.Filename, fo.Filename)
	require.Equal(t, cf.FileSize, fo.FileSize)
	require.Len(t, fo.ByteRuns.Runs, 1)
	require.Equal(t, cf.StartOffset, fo.ByteRuns.Runs[0].ImgOffset)
	require.Equal(t, cf.FileSize, fo.ByteRuns.Runs[0].Length)

	back, err := carve.FromFileObject(fo)
	require.NoError(t, err)
	require.Equal(t, cf, back)
}

func TestFromFileObjectRejectsWrongShape(t *testing.T) {
	fo := dfxml.FileObject{
		Filename: "odd.bin",
		ByteRuns: dfxml.ByteRuns{Runs: []dfxml.ByteRun{
			{ImgOffset: 0, Length: 10},
			{ImgOffset: 20, Length: 10},
		}},
	}

	_, err := carve.FromFileObject(fo)
	require.Error(t, err)
	require.ErrorIs(t, err, carve.ErrIoRead)
}

func TestWriteCatalogueThenReadFileObjectsRoundTrip(t *testing.T) {
	results := []carve.CarvedFile{
		{Type: "JPEG", StartOffset: 0, EndOffset: 100, FileSize: 100, HasValidFooter: true, Extracted: true, Filename: "JPEG_000000.jpg"},
		{Type: "PNG", StartOffset: 200, EndOffset: 350, FileSize: 150, HasValidFooter: false, Extracted: false, Filename: "PNG_000000.png"},
	}

	var buf bytes.Buffer
	err := carve.WriteCatalogue(&buf, "image.raw", 4096, results)
	require.NoError(t, err)

	objects, err := dfxml.ReadFileObjects(&buf)
	require.NoError(t, err)
	require.Len(t, objects, 2)

	for i, fo := range objects {
		back, err := carve.FromFileObject(fo)
		require.NoError(t, err)
		require.Equal(t, results[i], back)
	}
}
