package cmd

import (
	"context"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/relicio/carvex/internal/carve"
	"github.com/relicio/carvex/internal/logger"
	"github.com/relicio/carvex/pkg/pbar"
	"github.com/relicio/carvex/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineCarveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carve <image> [image...]",
		Short: "Scan a raw byte stream for carvable files",
		Long: `The 'carve' command scans one or more inputs for recoverable files. When
given more than one path, the inputs are treated as sequential fragments of
a single logical stream (e.g. split disk-image segments) and scanned as if
concatenated, without first joining them on disk.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunCarve,
	}

	cmd.Flags().StringP("output", "o", "", "directory to write extracted files to")
	cmd.Flags().StringP("report", "r", "", "path to write the DFXML catalogue (defaults alongside the output directory)")
	cmd.Flags().String("csv-report", "", "path to also write a flat CSV catalogue")
	cmd.Flags().StringSlice("types", nil, "restrict carving to these signature names")
	cmd.Flags().String("min-size", "0", "minimum carved file size")
	cmd.Flags().String("max-size", "", "maximum carved file size")
	cmd.Flags().String("chunk-size", "64KB", "streaming window size")
	cmd.Flags().String("overlap-size", "4KB", "inter-window overlap size")
	cmd.Flags().Int("search-window", 1024*1024, "max bytes searched past a header for a footer")
	cmd.Flags().Bool("no-extract", false, "catalogue candidates without writing bytes")
	cmd.Flags().Bool("no-footers", false, "bound every candidate by search-window instead of footer match")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	cmd.Flags().String("log-level", "INFO", "DEBUG, INFO, WARN or ERROR")

	return cmd
}

func RunCarve(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output")
	reportPath, _ := cmd.Flags().GetString("report")
	csvReportPath, _ := cmd.Flags().GetString("csv-report")
	types, _ := cmd.Flags().GetStringSlice("types")
	noExtract, _ := cmd.Flags().GetBool("no-extract")
	noFooters, _ := cmd.Flags().GetBool("no-footers")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	searchWindow, _ := cmd.Flags().GetInt("search-window")
	logLevel, _ := cmd.Flags().GetString("log-level")

	cfg := carve.DefaultConfig()
	cfg.InputFile = args[0]
	cfg.OutputDirectory = outDir

	opener := carve.FSOpener
	if len(args) > 1 {
		opener = carve.MultiOpener(args)
	}
	cfg.FileTypes = types
	cfg.MinFileSize = getBytes(cmd, "min-size")
	if v := getBytes(cmd, "max-size"); v != math.MaxUint64 {
		cfg.MaxFileSize = v
	}
	if v := int(getBytes(cmd, "chunk-size")); v > 0 {
		cfg.ChunkSize = v
	}
	if v := int(getBytes(cmd, "overlap-size")); v > 0 {
		cfg.OverlapSize = v
	}
	cfg.SearchWindow = searchWindow
	cfg.ExtractFiles = !noExtract
	cfg.UseFooters = !noFooters

	log := logger.New(os.Stdout, logger.ParseLevel(logLevel))

	registry := carve.NewBuiltinRegistry()
	engine := carve.NewEngine(cfg, registry, log, opener)

	var state *pbar.ProgressBarState
	if !noProgress {
		totalSize, err := totalInputSize(args)
		if err != nil {
			return err
		}
		state = pbar.NewProgressBarState(totalSize)
		engine.SetProgressCallback(func() {
			stats := engine.Stats()
			state.ProcessedBytes = int64(stats.BytesProcessed)
			state.FilesFound = stats.FilesFound
			state.Render(false)
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := engine.Carve(ctx)
	if state != nil {
		state.Render(true)
		state.Finish()
	}
	if err != nil {
		return err
	}

	stats := engine.Stats()
	log.Infof("scan complete: %d files found, %d extracted, %s processed",
		stats.FilesFound, stats.FilesExtracted, format.FormatBytes(int64(stats.BytesProcessed)))

	if reportPath == "" && outDir != "" {
		reportPath = outDir + ".dfxml"
	}
	if reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return err
		}
		defer f.Close()

		totalSize, err := totalInputSize(args)
		if err != nil {
			return err
		}
		if err := carve.WriteCatalogue(f, cfg.InputFile, uint64(totalSize), engine.Results()); err != nil {
			return err
		}
		log.Infof("catalogue written to %s", reportPath)
	}

	if csvReportPath != "" {
		f, err := os.Create(csvReportPath)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := carve.WriteCSVCatalogue(f, engine.Results()); err != nil {
			return err
		}
		log.Infof("CSV catalogue written to %s", csvReportPath)
	}

	return nil
}

func totalInputSize(paths []string) (int64, error) {
	var total int64
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return 0, err
		}
		total += info.Size()
	}
	return total, nil
}

func getBytes(cmd *cobra.Command, name string) uint64 {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return math.MaxUint64
	}

	v, err := format.ParseBytes(s)
	if err != nil {
		return math.MaxUint64
	}
	return v
}
