package importer

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"focode-importer/feature/importer/models"
)

// maxBufferedChars bounds how much unparsed input the scanner accumulates
// before giving up on the current fragment. Exports contain records spanning
// many physical lines, but a buffer past this size means the fragment is
// corrupt; it is dropped silently so one bad region cannot exhaust memory or
// poison the rest of the stream.
const maxBufferedChars = 8_000_000

// RecordScanner reads a crawler export and yields one parsed record at a
// time, in source order. It follows the bufio.Scanner idiom:
//
//	sc := NewRecordScanner(r)
//	for sc.Scan() {
//	    rec := sc.Record()
//	    ...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// Records are usually one JSON object per line, but legacy exports pretty-
// print objects across multiple lines. The scanner accumulates lines and
// attempts a parse after each append, emitting as soon as the buffer holds
// one complete object.
type RecordScanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	record *models.Record
	err    error
	done   bool
}

// NewRecordScanner creates a scanner over an export stream.
func NewRecordScanner(r io.Reader) *RecordScanner {
	return &RecordScanner{reader: bufio.NewReaderSize(r, 64*1024)}
}

// Scan advances to the next parseable record. It returns false at end of
// stream or on a read error; parse failures and oversized fragments never
// stop the scan.
func (s *RecordScanner) Scan() bool {
	if s.done {
		return false
	}

	for {
		line, oversized, readErr := s.readLine()
		if readErr != nil && readErr != io.EOF {
			s.done = true
			s.err = readErr
			return false
		}

		switch {
		case oversized:
			// A runaway line is corrupt on its own and poisons whatever
			// fragment it was part of.
			s.buf.Reset()

		case s.buf.Len() == 0 && strings.TrimSpace(line) == "":
			// Blank lines between records carry nothing; blank lines inside
			// a buffered fragment are part of it.

		default:
			if s.buf.Len() > 0 {
				s.buf.WriteByte('\n')
			}
			s.buf.WriteString(line)

			if rec, ok := tryParse(s.buf.String()); ok {
				s.record = rec
				s.buf.Reset()
				return true
			}

			// Unparsable content past the ceiling is dropped, not fatal.
			// This loses the fragment; the rest of the stream still gets
			// processed.
			if s.buf.Len() > maxBufferedChars {
				s.buf.Reset()
			}
		}

		if readErr == io.EOF {
			// A trailing truncated object is discarded silently; the parse
			// attempt above already ran on the final line.
			s.done = true
			s.buf.Reset()
			return false
		}
	}
}

// readLine reads one physical line in bounded chunks. A line that alone
// exceeds the accumulation ceiling is drained and discarded, reported via
// oversized, so a single runaway line never exhausts memory or turns the
// run fatal.
func (s *RecordScanner) readLine() (line string, oversized bool, err error) {
	var b strings.Builder
	for {
		chunk, err := s.reader.ReadSlice('\n')
		b.Write(chunk)

		switch err {
		case nil:
			return trimLineEnding(b.String()), false, nil

		case bufio.ErrBufferFull:
			if b.Len() > maxBufferedChars {
				return "", true, s.drainLine()
			}

		default:
			// End of stream or read failure; the final line may be
			// unterminated.
			return trimLineEnding(b.String()), false, err
		}
	}
}

// drainLine throws away input up to and including the next newline.
func (s *RecordScanner) drainLine() error {
	for {
		_, err := s.reader.ReadSlice('\n')
		switch err {
		case nil:
			return nil
		case bufio.ErrBufferFull:
			continue
		default:
			return err
		}
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Record returns the record produced by the last successful Scan.
func (s *RecordScanner) Record() *models.Record {
	return s.record
}

// Err returns the first read error encountered, if any. Parse failures are
// not errors.
func (s *RecordScanner) Err() error {
	return s.err
}

func tryParse(buf string) (*models.Record, bool) {
	var rec models.Record
	if err := json.Unmarshal([]byte(buf), &rec); err != nil {
		return nil, false
	}
	return &rec, true
}
