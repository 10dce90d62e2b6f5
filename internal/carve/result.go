package carve

// CarvedFile is a single candidate that survived all filters.
type CarvedFile struct {
	// Type is the matched signature's Name.
	Type string
	// StartOffset is the absolute byte position of the header's first byte.
	StartOffset uint64
	// EndOffset is one past the last byte attributed to the file, i.e.
	// StartOffset + FileSize.
	EndOffset uint64
	// FileSize is EndOffset - StartOffset.
	FileSize uint64
	// HasValidFooter is true iff EndOffset was determined by a footer
	// match, false if determined by a search-window fallback.
	HasValidFooter bool
	// Extracted is true iff the bytes were successfully written to the
	// output directory.
	Extracted bool
	// Filename is the basename used for extraction and reports:
	// "<TYPE>_<counter:06d><ext>", unique per engine run within a type.
	Filename string
}

// Stats aggregates counters across every Carve run on the same Engine since
// the last Clear.
type Stats struct {
	FilesFound     int
	FilesExtracted int
	BytesProcessed uint64
}
