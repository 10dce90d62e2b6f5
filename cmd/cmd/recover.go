// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/relicio/carvex/internal/carve"
	"github.com/relicio/carvex/internal/logger"
	"github.com/relicio/carvex/pkg/dfxml"
	osutils "github.com/relicio/carvex/pkg/util/os"
	"github.com/spf13/cobra"
)

func DefineRecoverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover <image_path> <report_file>",
		Short: "Extract files from an image using a previously written catalogue",
		Long: `The 'recover' command extracts files from an image based on the byte
ranges recorded in a DFXML catalogue produced by 'carve'. This lets a
catalogue be reviewed, edited, or filtered before any bytes are written.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunRecover,
	}
	cmd.Flags().StringP("output-dir", "o", "", "directory where recovered files will be placed")
	return cmd
}

func RunRecover(cmd *cobra.Command, args []string) error {
	reader, err := carve.OpenChunkReader(carve.FSOpener, args[0], carve.DefaultChunkSize, carve.DefaultOverlapSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	reportFile, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer reportFile.Close()

	objects, err := dfxml.ReadFileObjects(bufio.NewReader(reportFile))
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		wdir, err := os.Getwd()
		if err != nil {
			return err
		}
		base := filepath.Base(reportFile.Name())
		name := strings.TrimSuffix(base, filepath.Ext(base))
		outDir = filepath.Join(wdir, name+"-dump")
	}

	if _, err := osutils.EnsureDir(outDir, true); err != nil {
		return err
	}

	log := logger.New(os.Stdout, logger.InfoLevel)

	recovered := 0
	for _, fo := range objects {
		cf, err := carve.FromFileObject(fo)
		if err != nil {
			log.Errorf("skipping %s: %s", fo.Filename, err)
			continue
		}

		log.Infof("recovering %s", filepath.Join(outDir, cf.Filename))

		ok, err := carve.ExtractAt(reader, outDir, cf)
		if err != nil {
			log.Errorf("unable to recover %s: %s", cf.Filename, err)
			continue
		}
		if ok {
			recovered++
		}
	}

	log.Infof("recovered %d of %d catalogued files", recovered, len(objects))
	return nil
}
