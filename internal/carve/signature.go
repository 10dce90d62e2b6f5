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

// Package carve implements the scanning and carving engine: a streaming
// chunked reader with inter-chunk overlap, a signature registry, a
// header/footer matcher, and the carving state machine that turns header
// hits into CarvedFile records.
package carve

// Signature describes one recoverable file format: the magic header every
// candidate must start with, an optional footer that delimits its end, and
// the bookkeeping needed to name and bound a carved instance.
//
// A Signature is immutable once added to a Registry.
type Signature struct {
	// Name uniquely identifies the format within a Registry (e.g. "JPEG").
	// Uppercase by convention; used for filtering and result tagging.
	Name string
	// Extension is used only when composing output filenames, e.g. ".jpg".
	Extension string
	// Header is the non-empty magic prefix required at a candidate's start.
	Header []byte
	// Footer, when non-empty, is the terminator whose last byte is the
	// candidate's last byte.
	Footer []byte
	// HasFooter must be true iff Footer is non-empty.
	HasFooter bool
	// MaxSize is an advisory upper bound for this type; 0 means none. The
	// global MaxFileSize in Config still applies regardless.
	MaxSize uint64
}
