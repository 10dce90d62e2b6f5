package carve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/relicio/carvex/internal/logger"
)

// Engine is the control core: it drives a ChunkReader, scans each window
// for header matches via the Registry, applies filters, determines each
// candidate's end offset, optionally extracts bytes, and accumulates
// results and statistics.
//
// Per-candidate state machine:
//
//	Detecting -> HeaderHit -> (FooterSearching -> Delimited | Undelimited)
//	  -> SizeValidated -> (Extracting -> Emitted | Rejected) | Filtered
//
// All state for one candidate is established within a single scanWindow
// invocation via the random-access read path; the engine never retains
// partial candidate state across windows.
type Engine struct {
	cfg      Config
	registry *Registry
	log      *logger.Logger
	opener   func(string) (chunkSource, error)

	reader   *ChunkReader
	results  []CarvedFile
	counters map[string]int
	stats    Stats
	progress func()
}

// NewEngine constructs an Engine bound to cfg and registry, logging
// through log (which may be nil to discard log output). opener resolves an
// input path to a random-access, sized, closeable source; production
// callers pass an fs.Open-backed opener, tests can pass an in-memory one.
func NewEngine(cfg Config, registry *Registry, log *logger.Logger, opener func(string) (chunkSource, error)) *Engine {
	return &Engine{
		cfg:      cfg,
		registry: registry,
		log:      log,
		opener:   opener,
		counters: make(map[string]int),
	}
}

// AddCustomSignature delegates to the underlying registry. Must not be
// called concurrently with Carve.
func (e *Engine) AddCustomSignature(sig Signature) {
	e.registry.Add(sig)
}

// SetProgressCallback registers fn to be invoked synchronously on the
// caller's goroutine after each window; fn reads progress via Stats and
// TotalSize. fn must not block and must not mutate engine state.
func (e *Engine) SetProgressCallback(fn func()) {
	e.progress = fn
}

// TotalSize returns the input's total length, valid only once Carve has
// opened it; 0 beforehand.
func (e *Engine) TotalSize() int64 {
	if e.reader == nil {
		return 0
	}
	return e.reader.Size()
}

// Results returns the CarvedFile records emitted so far, in discovery
// order (nondecreasing StartOffset).
func (e *Engine) Results() []CarvedFile {
	return e.results
}

// Stats returns the aggregate counters for the run(s) since the last
// Clear.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Clear discards accumulated results and statistics. Per-type filename
// counters are engine-owned state and are NOT reset here — they persist
// across repeated Carve calls on the same Engine so that filenames stay
// unique for the lifetime of the instance; construct a new Engine to reset
// them.
func (e *Engine) Clear() {
	e.results = nil
	e.stats = Stats{}
}

// Carve validates cfg, opens the input, and runs the scan loop to
// completion or cancellation. cfg.FileTypes, when non-empty, restricts
// carving to those signature names. Returns ErrInvalidConfig before any
// I/O if the configuration is invalid, ErrIoOpen if the input cannot be
// opened, ErrIoRead on an unrecoverable streaming read (results gathered so far
// remain valid and queryable via Results), or ErrCancelled if ctx is
// cancelled between windows.
func (e *Engine) Carve(ctx context.Context) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	reader, err := OpenChunkReader(e.opener, e.cfg.InputFile, e.cfg.ChunkSize, e.cfg.OverlapSize)
	if err != nil {
		return err
	}
	defer reader.Close()
	e.reader = reader

	if e.cfg.ExtractFiles && e.cfg.OutputDirectory != "" {
		if err := os.MkdirAll(e.cfg.OutputDirectory, 0o755); err != nil {
			return wrapErr(ErrIoOpen, err)
		}
	}

	filter := toSet(e.cfg.FileTypes)

	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ErrCancelled
			default:
			}
		}

		window, base, newBytes, err := reader.ReadChunk()
		if err != nil {
			if isEOF(err) {
				break
			}
			return err
		}

		e.stats.BytesProcessed += uint64(newBytes)
		isFinal := base+int64(len(window)) >= reader.Size()
		e.scanWindow(window, base, filter, reader.overlapSize, isFinal)

		if e.progress != nil {
			e.progress()
		}
	}

	return nil
}

// scanWindow examines every offset in buf for a header match and, for each
// accepted candidate, determines its bounds and emits a CarvedFile.
// Scanning always continues from i+1 after a hit (never from the
// candidate's end offset) so that nested and overlapping candidates, such
// as a JPEG embedded in a PDF, are all reported; deduplication is left to
// consumers.
//
// A non-final window's trailing overlapSize bytes are retained as the next
// window's leading bytes, so new candidates are not opened there: doing so
// would re-emit the same absolute offset once from this window and once
// from the next. overlapSize is chosen so any header starting in that tail
// is fully contained at the head of the next window, where it is scanned
// exactly once. The final window has no successor, so it is scanned in
// full.
func (e *Engine) scanWindow(buf []byte, base int64, filter map[string]bool, overlapSize int, isFinal bool) {
	limit := len(buf)
	if !isFinal {
		limit -= overlapSize
	}

	for i := 0; i < limit; i++ {
		sig, ok := e.registry.MatchHeader(buf[i:])
		if !ok {
			continue
		}
		if len(filter) > 0 && !filter[sig.Name] {
			continue
		}

		start := base + int64(i)
		end, hasFooter := e.determineEnd(start, sig)
		if end > e.reader.Size() {
			end = e.reader.Size()
		}

		fileSize := uint64(end - start)
		if fileSize < e.cfg.MinFileSize {
			continue
		}
		if e.cfg.MaxFileSize > 0 && fileSize > e.cfg.MaxFileSize {
			continue
		}

		cf := CarvedFile{
			Type:           sig.Name,
			StartOffset:    uint64(start),
			EndOffset:      uint64(end),
			FileSize:       fileSize,
			HasValidFooter: hasFooter,
			Filename:       e.nextFilename(sig),
		}

		if e.cfg.ExtractFiles {
			cf.Extracted = e.extract(cf)
			if cf.Extracted {
				e.stats.FilesExtracted++
			}
		}

		e.results = append(e.results, cf)
		e.stats.FilesFound++

		if e.log != nil {
			e.log.Debugf("found %s at offset %d (%d bytes, footer=%v)", sig.Name, start, fileSize, hasFooter)
		}
	}
}

// determineEnd resolves a candidate's end offset per the header found at
// start. When footers are enabled and the signature declares one, the
// footer is searched for within cfg.SearchWindow bytes past start; a miss
// falls back to a search-window-bounded estimate, same as when footers are
// disabled entirely or the signature has none.
func (e *Engine) determineEnd(start int64, sig Signature) (end int64, hasValidFooter bool) {
	if e.cfg.UseFooters && sig.HasFooter {
		window, err := e.reader.ReadAt(start, e.cfg.SearchWindow)
		if err == nil {
			if idx, found := find(window, sig.Footer); found {
				return start + int64(idx) + int64(len(sig.Footer)), true
			}
		}
	}
	return start + int64(e.cfg.SearchWindow), false
}

// nextFilename assigns "<NAME>_<counter:06d><ext>", using and advancing
// the per-type counter owned by the engine.
func (e *Engine) nextFilename(sig Signature) string {
	n := e.counters[sig.Name]
	e.counters[sig.Name] = n + 1
	return fmt.Sprintf("%s_%06d%s", sig.Name, n, sig.Extension)
}

// extract reads cf.FileSize bytes from the input and writes them to
// cfg.OutputDirectory/cf.Filename. Failures are logged and do not abort
// the scan; a zero-byte read is treated as a failed extraction.
func (e *Engine) extract(cf CarvedFile) bool {
	data, err := e.reader.ReadAt(int64(cf.StartOffset), int(cf.FileSize))
	if err != nil {
		if e.log != nil {
			e.log.Errorf("read carved bytes for %s: %s", cf.Filename, err)
		}
		return false
	}

	ok, err := writeExtracted(e.cfg.OutputDirectory, cf.Filename, data)
	if err != nil && e.log != nil {
		e.log.Errorf("write output %s: %s", cf.Filename, err)
	}
	return ok
}

func toSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
