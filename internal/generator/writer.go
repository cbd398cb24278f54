package generator

import (
	"bufio"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Project-Sylos/Fixture/internal/types"
)

// ErrIO marks every failure to create, write or close a fixture file
var ErrIO = errors.New("fixture i/o failure")

// Result describes a fixture file that was written completely
type Result struct {
	Path      string
	LineCount int
	SizeBytes int64
	Checksum  string // SHA256 hex of the written bytes
}

// WriteLines writes one "data-<value>\n" line per element of seq to w and
// returns the number of bytes written.
func WriteLines(w io.Writer, seq Sequence) (int64, error) {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, len(types.LinePrefix)+21)

	var written int64
	for _, v := range seq {
		line = append(line[:0], types.LinePrefix...)
		line = strconv.AppendInt(line, int64(v), 10)
		line = append(line, '\n')

		n, err := bw.Write(line)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("%w: failed to write line: %w", ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("%w: failed to flush lines: %w", ErrIO, err)
	}
	return written, nil
}

// WriteFile creates (or truncates) path and writes seq to it. The file is
// closed on every return path; a failed close is reported as an error.
// A cancelled ctx stops the run before the file is touched.
func WriteFile(ctx context.Context, path string, seq Sequence) (res *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create %s: %w", ErrIO, path, err)
	}
	// A close error only replaces a successful result; an earlier write error
	// wins. Not covered by tests since os.File offers no way to force it.
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			res = nil
			err = fmt.Errorf("%w: failed to close %s: %w", ErrIO, path, cerr)
		}
	}()

	hash := sha256.New()
	n, err := WriteLines(io.MultiWriter(f, hash), seq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Result{
		Path:      path,
		LineCount: len(seq),
		SizeBytes: n,
		Checksum:  hexDigest(hash),
	}, nil
}
