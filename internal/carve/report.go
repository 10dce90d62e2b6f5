package carve

import (
	"io"

	"github.com/relicio/carvex/pkg/dfxml"
)

// ToFileObject converts a CarvedFile into the DFXML record written by the
// catalogue report. Each CarvedFile maps to a single contiguous byte run
// since carving never reassembles fragments.
func (cf CarvedFile) ToFileObject() dfxml.FileObject {
	return dfxml.FileObject{
		Filename:       cf.Filename,
		FileSize:       cf.FileSize,
		FileType:       cf.Type,
		HasValidFooter: cf.HasValidFooter,
		Extracted:      cf.Extracted,
		ByteRuns: dfxml.ByteRuns{
			Runs: []dfxml.ByteRun{
				{Offset: 0, ImgOffset: cf.StartOffset, Length: cf.FileSize},
			},
		},
	}
}

// FromFileObject reconstructs the subset of a CarvedFile needed to re-run
// extraction from a catalogue entry read back via dfxml.ReadFileObjects. It
// assumes the single-byte-run shape ToFileObject produces; a report written
// by another tool with multiple runs per file is rejected.
func FromFileObject(fo dfxml.FileObject) (CarvedFile, error) {
	if len(fo.ByteRuns.Runs) != 1 {
		return CarvedFile{}, wrapErr(ErrIoRead, errFileObjectShape(fo.Filename, len(fo.ByteRuns.Runs)))
	}
	run := fo.ByteRuns.Runs[0]
	return CarvedFile{
		Type:           fo.FileType,
		StartOffset:    run.ImgOffset,
		EndOffset:      run.ImgOffset + run.Length,
		FileSize:       fo.FileSize,
		HasValidFooter: fo.HasValidFooter,
		Extracted:      fo.Extracted,
		Filename:       fo.Filename,
	}, nil
}

// WriteCatalogue emits the full DFXML report for results to w.
func WriteCatalogue(w io.Writer, imagePath string, imageSize uint64, results []CarvedFile) error {
	dw := dfxml.NewDFXMLWriter(w)

	hdr := dfxml.DFXMLHeader{
		XmlOutput: dfxml.XmlOutputVersion,
		Metadata:  dfxml.DefaultMetadata,
		Creator: dfxml.Creator{
			Package:              "carvex",
			ExecutionEnvironment: dfxml.GetExecEnv(),
		},
		Source: dfxml.Source{
			ImageFilename: imagePath,
			ImageSize:     imageSize,
		},
	}
	if err := dw.WriteHeader(hdr); err != nil {
		return err
	}

	for _, cf := range results {
		if err := dw.WriteFileObject(cf.ToFileObject()); err != nil {
			return err
		}
	}
	return dw.Close()
}

// ExtractAt re-extracts a single catalogued file from reader into dir,
// given a record previously read back via FromFileObject. Used by the
// recover workflow to separate cataloguing a scan from materializing its
// bytes.
func ExtractAt(reader *ChunkReader, dir string, cf CarvedFile) (bool, error) {
	data, err := reader.ReadAt(int64(cf.StartOffset), int(cf.FileSize))
	if err != nil {
		return false, err
	}
	return writeExtracted(dir, cf.Filename, data)
}
