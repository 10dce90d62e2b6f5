package carve

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"Filename", "Type", "StartOffset", "EndOffset", "FileSize", "HasValidFooter", "Extracted"}

// WriteCSVCatalogue emits results as a flat CSV report, the peripheral
// counterpart to WriteCatalogue's DFXML report.
func WriteCSVCatalogue(w io.Writer, results []CarvedFile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return wrapErr(ErrIoWrite, err)
	}

	for _, cf := range results {
		row := []string{
			cf.Filename,
			cf.Type,
			strconv.FormatUint(cf.StartOffset, 10),
			strconv.FormatUint(cf.EndOffset, 10),
			strconv.FormatUint(cf.FileSize, 10),
			strconv.FormatBool(cf.HasValidFooter),
			strconv.FormatBool(cf.Extracted),
		}
		if err := cw.Write(row); err != nil {
			return wrapErr(ErrIoWrite, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return wrapErr(ErrIoWrite, err)
	}
	return nil
}
