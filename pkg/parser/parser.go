package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource implements LineSource for reading from log files.
// Files are read back to back as one concatenated stream, so a run may
// span a file boundary.
type FileSource struct {
	files []string

	currentFile    *os.File
	currentScanner *bufio.Scanner
	currentSource  string
	currentLine    int
	fileIndex      int
}

// NewFileSource creates a LineSource that reads the given files in order.
func NewFileSource(files []string) *FileSource {
	return &FileSource{
		files:     files,
		fileIndex: -1,
	}
}

// Next returns the next line of the concatenated input.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (string, error) {
	for {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		// Ensure we have a file open
		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return "", err
			}
		}

		if s.currentScanner.Scan() {
			s.currentLine++
			return s.currentScanner.Text(), nil
		}

		// Check for scanner error
		if err := s.currentScanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return "", err
		}
		s.currentScanner = nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}

	s.currentFile = f
	s.currentScanner = newScanner(f)
	s.currentSource = path
	s.currentLine = 0

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		s.currentScanner = nil
		return err
	}
	return nil
}

// ReaderSource implements LineSource over an arbitrary reader, typically
// standard input when no files are given.
type ReaderSource struct {
	scanner *bufio.Scanner
}

// NewReaderSource creates a LineSource that reads lines from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{scanner: newScanner(r)}
}

// Next returns the next line, or io.EOF when the reader is drained.
func (s *ReaderSource) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return "", io.EOF
}

// Close is a no-op; the underlying reader is owned by the caller.
func (s *ReaderSource) Close() error {
	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return sc
}
