package journal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/modoterra/jrnlvw/pkg/core"
)

// DefaultMaxLineSize bounds a single journal line. Longer lines are skipped.
const DefaultMaxLineSize = 1024 * 1024

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error { return rc.close() }

// Open opens a journal export file. zstd and gzip compressed files are
// detected by their magic bytes and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	rc, err := Decompress(f, f.Close)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rc, nil
}

// Decompress wraps src, decompressing it when it starts with a zstd or gzip
// header. closeSrc, if not nil, runs on Close.
func Decompress(src io.Reader, closeSrc func() error) (io.ReadCloser, error) {
	if closeSrc == nil {
		closeSrc = func() error { return nil }
	}

	br := bufio.NewReader(src)
	magic, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &readCloser{Reader: dec, close: func() error {
			dec.Close()
			return closeSrc()
		}}, nil
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &readCloser{Reader: gz, close: func() error {
			return errors.Join(gz.Close(), closeSrc())
		}}, nil
	}

	return &readCloser{Reader: br, close: closeSrc}, nil
}

// Stats summarises one ReadAll pass.
type Stats struct {
	Lines   int
	Entries int
	Skipped int
}

// Reader decodes a whole journal export stream into memory.
type Reader struct {
	MaxLineSize int
	logger      *slog.Logger
}

// NewReader creates a reader that logs skipped lines to logger.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{MaxLineSize: DefaultMaxLineSize, logger: logger}
}

// ReadAll reads src line by line. Blank lines are ignored; lines that fail
// to decode or exceed MaxLineSize are logged and skipped. Only an I/O error
// on src is returned.
func (r *Reader) ReadAll(src io.Reader) ([]core.Entry, Stats, error) {
	var (
		entries []core.Entry
		stats   Stats
		dec     Decoder
		buf     []byte
		tooLong bool
	)

	br := bufio.NewReaderSize(src, 64*1024)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return entries, stats, fmt.Errorf("read line %d: %w", stats.Lines+1, err)
		}

		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > r.MaxLineSize {
				tooLong = true
				buf = buf[:0]
			}
		}
		if isPrefix {
			continue
		}

		stats.Lines++
		line := bytes.TrimSpace(buf)
		switch {
		case tooLong:
			stats.Skipped++
			r.logger.Warn("line too long, ignoring", "line", stats.Lines, "max", r.MaxLineSize)
		case len(line) == 0:
		default:
			e, err := dec.Decode(line)
			if err != nil {
				stats.Skipped++
				r.logger.Warn("illformed line, ignoring entry", "err", &DecodeError{Line: stats.Lines, Err: err})
				break
			}
			entries = append(entries, e)
		}
		buf = buf[:0]
		tooLong = false
	}

	stats.Entries = len(entries)
	return entries, stats, nil
}

// ReadFile opens path and reads every entry from it.
func (r *Reader) ReadFile(path string) ([]core.Entry, Stats, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer rc.Close()
	return r.read(path, rc)
}

// ReadStream reads every entry from an already open stream such as stdin.
// Compressed input is detected as in Open. name only labels log output.
func (r *Reader) ReadStream(name string, src io.Reader) ([]core.Entry, Stats, error) {
	rc, err := Decompress(src, nil)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", name, err)
	}
	defer rc.Close()
	return r.read(name, rc)
}

func (r *Reader) read(name string, src io.Reader) ([]core.Entry, Stats, error) {
	entries, stats, err := r.ReadAll(src)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", name, err)
	}
	r.logger.Debug("journal read", "source", name, "lines", stats.Lines, "entries", stats.Entries, "skipped", stats.Skipped)
	return entries, stats, nil
}
