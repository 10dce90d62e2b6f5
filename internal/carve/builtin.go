package carve

// NewBuiltinRegistry returns a Registry preloaded with the common file
// formats in the canonical scan order. The first registered header that
// matches wins, so DOCX (a ZIP with a longer shared magic) registered after
// ZIP is reported as ZIP — see DESIGN.md's Open Questions for why this is
// kept rather than redesigned.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, sig := range builtinSignatures {
		r.Add(sig)
	}
	return r
}

var builtinSignatures = []Signature{
	{
		Name:      "JPEG",
		Extension: ".jpg",
		Header:    []byte{0xFF, 0xD8, 0xFF},
		Footer:    []byte{0xFF, 0xD9},
		HasFooter: true,
	},
	{
		Name:      "PNG",
		Extension: ".png",
		Header:    []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		Footer:    []byte{0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82},
		HasFooter: true,
	},
	{
		Name:      "GIF87a",
		Extension: ".gif",
		Header:    []byte("GIF87a"),
		Footer:    []byte{0x00, 0x3B},
		HasFooter: true,
	},
	{
		Name:      "GIF89a",
		Extension: ".gif",
		Header:    []byte("GIF89a"),
		Footer:    []byte{0x00, 0x3B},
		HasFooter: true,
	},
	{
		Name:      "PDF",
		Extension: ".pdf",
		Header:    []byte{0x25, 0x50, 0x44, 0x46, 0x2D},
		Footer:    []byte{0x25, 0x25, 0x45, 0x4F, 0x46},
		HasFooter: true,
	},
	{
		Name:      "ZIP",
		Extension: ".zip",
		Header:    []byte{0x50, 0x4B, 0x03, 0x04},
		Footer:    []byte{0x50, 0x4B, 0x05, 0x06},
		HasFooter: true,
	},
	{
		Name:      "RAR",
		Extension: ".rar",
		Header:    []byte{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00},
		HasFooter: false,
	},
	{
		Name:      "7ZIP",
		Extension: ".7z",
		Header:    []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C},
		HasFooter: false,
	},
	{
		Name:      "DOCX",
		Extension: ".docx",
		Header:    []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00},
		HasFooter: false,
	},
	{
		Name:      "MP3",
		Extension: ".mp3",
		Header:    []byte{0x49, 0x44, 0x33},
		HasFooter: false,
	},
	{
		Name:      "MP3_ALT",
		Extension: ".mp3",
		Header:    []byte{0xFF, 0xFB},
		HasFooter: false,
	},
	{
		Name:      "MP4",
		Extension: ".mp4",
		Header:    []byte{0x00, 0x00, 0x00, 0x20, 0x66, 0x74, 0x79, 0x70},
		HasFooter: false,
	},
	{
		Name:      "AVI",
		Extension: ".avi",
		Header:    []byte{0x52, 0x49, 0x46, 0x46},
		HasFooter: false,
	},
	{
		Name:      "BMP",
		Extension: ".bmp",
		Header:    []byte{0x42, 0x4D},
		HasFooter: false,
	},
	{
		Name:      "TIFF_LE",
		Extension: ".tiff",
		Header:    []byte{0x49, 0x49, 0x2A, 0x00},
		HasFooter: false,
	},
	{
		Name:      "TIFF_BE",
		Extension: ".tiff",
		Header:    []byte{0x4D, 0x4D, 0x00, 0x2A},
		HasFooter: false,
	},
	{
		Name:      "DOC",
		Extension: ".doc",
		Header:    []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1},
		HasFooter: false,
	},
	{
		Name:      "EXE",
		Extension: ".exe",
		Header:    []byte{0x4D, 0x5A},
		HasFooter: false,
	},
	{
		Name:      "SQLITE",
		Extension: ".sqlite",
		Header:    []byte("SQLite format 3\x00"),
		HasFooter: false,
	},
}
