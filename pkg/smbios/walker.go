package smbios

// Walker provides sequential access to the structures in a table buffer.
// It never copies or mutates the buffer and is bounded by its length, so a
// walk always terminates. A Walker is forward-only; restart by creating a
// new one. It is not safe for concurrent stepping.
type Walker struct {
	buf    []byte
	offset int
}

// NewWalker creates a walker over buf starting at the given offset
// (typically 0, or the offset returned by ParseEntryHeader).
func NewWalker(buf []byte, start int) *Walker {
	if start < 0 {
		start = 0
	}
	return &Walker{buf: buf, offset: start}
}

// Offset returns the walker's current position in the buffer.
func (w *Walker) Offset() int {
	return w.offset
}

// Next decodes the structure at the current offset and advances past its
// string pool. It returns (nil, false) when the table ends: either too few
// bytes remain for a header, or the header declares a length below 4
// (malformed; structures already produced stay valid).
//
// A buffer that ends inside a structure's formatted section or string pool
// is not an error: the structure is produced with the strings that fit and
// the walk stops after it.
func (w *Walker) Next() (*Structure, bool) {
	header, ok := parseStructureHeader(w.buf, w.offset)
	if !ok {
		return nil, false
	}
	if header.Length < minStructureLength {
		return nil, false
	}

	start := w.offset
	formattedEnd := start + int(header.Length)
	if formattedEnd > len(w.buf) {
		// Truncated formatted section: no room for a string pool.
		formattedEnd = len(w.buf)
	}

	poolEnd, next := findTerminator(w.buf, formattedEnd)
	s := &Structure{
		Header:     header,
		Offset:     start,
		Strings:    parseStrings(w.buf, formattedEnd, poolEnd),
		NextOffset: next,
	}
	w.offset = next
	return s, true
}

// findTerminator scans from start for the double-NUL pair ending a string
// pool. It returns the pool end (exclusive) and the offset of the next
// structure. Without a terminator before the buffer end the pool runs to
// the end of the buffer and the next offset is the buffer length.
func findTerminator(buf []byte, start int) (poolEnd, next int) {
	for p := start; p+1 < len(buf); p++ {
		if buf[p] == 0 && buf[p+1] == 0 {
			return p, p + 2
		}
	}
	return len(buf), len(buf)
}
