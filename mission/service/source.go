package service

import (
	"bufio"
	"io"
	"strings"
)

// LineSource yields mission input one line at a time.
type LineSource interface {
	// Next returns the next line without its terminator. ok is false at the
	// end of input.
	Next() (line string, ok bool, err error)

	// Line returns the 1-based index of the last line returned by Next.
	Line() int
}

// MaxLineSize caps a single input line. Command lines carry one byte per
// command, so this bounds the program length of one rover.
const MaxLineSize = 64 << 20

// ScannerSource reads lines from an io.Reader.
type ScannerSource struct {
	scanner *bufio.Scanner
	line    int
}

// NewScannerSource wraps r. Lines may end in "\n" or "\r\n" and may be up
// to MaxLineSize bytes long.
func NewScannerSource(r io.Reader) *ScannerSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &ScannerSource{scanner: scanner}
}

func (s *ScannerSource) Next() (string, bool, error) {
	if !s.scanner.Scan() {
		return "", false, s.scanner.Err()
	}
	s.line++
	return strings.TrimRight(s.scanner.Text(), "\r"), true, nil
}

func (s *ScannerSource) Line() int {
	return s.line
}

// SliceSource serves lines already held in memory.
type SliceSource struct {
	lines []string
	next  int
}

// NewSliceSource creates a source over lines.
func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

func (s *SliceSource) Next() (string, bool, error) {
	if s.next >= len(s.lines) {
		return "", false, nil
	}
	line := s.lines[s.next]
	s.next++
	return strings.TrimRight(line, "\r"), true, nil
}

func (s *SliceSource) Line() int {
	return s.next
}
