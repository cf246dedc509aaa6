// Package fixture writes files of randomly generated lines.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jotfs/gentext/internal/errs"
	"github.com/jotfs/gentext/internal/linegen"
	"github.com/jotfs/gentext/internal/log"
	"github.com/jotfs/gentext/internal/sum"
)

// DefaultBufferSize is the write buffer size used when Options.BufferSize is zero.
const DefaultBufferSize = 64 * 1024

// Options control what is written.
type Options struct {
	// Lines is the number of lines to write. Values <= 0 write nothing.
	Lines int
	// AvgSize is the average line size passed to the line generator. Must be >= 1.
	AvgSize int
	// BufferSize is the size of the write buffer in bytes.
	BufferSize int
}

// Result describes the output of a completed write.
type Result struct {
	Lines int
	Bytes int64
	Sum   sum.Sum
}

// Write writes opts.Lines newline-terminated lines from gen to w.
func Write(w io.Writer, gen *linegen.Generator, opts Options) (Result, error) {
	if err := linegen.ValidateAverage(opts.AvgSize); err != nil {
		return Result{}, err
	}
	size := opts.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}

	h := sum.New()
	bw := bufio.NewWriterSize(io.MultiWriter(w, h), size)
	line := make([]byte, 0, min(linegen.MaxLen(opts.AvgSize)+1, size))

	var res Result
	for i := 0; i < opts.Lines; i++ {
		var err error
		line, err = gen.Append(line[:0], opts.AvgSize)
		if err != nil {
			return res, err
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return res, errs.Wrap(errs.IO, err, fmt.Sprintf("writing line %d", i+1))
		}
		res.Lines++
	}
	if err := bw.Flush(); err != nil {
		return res, errs.Wrap(errs.IO, err, "flushing output")
	}
	res.Bytes = h.Len()
	res.Sum = h.Sum()
	return res, nil
}

// WriteFile creates or truncates the file at path and writes opts.Lines lines from gen
// to it. The file is not touched if opts.AvgSize is invalid. On a write failure the
// partially written file is left in place.
func WriteFile(path string, gen *linegen.Generator, opts Options) (Result, error) {
	if err := linegen.ValidateAverage(opts.AvgSize); err != nil {
		return Result{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, errs.Wrap(errs.IO, err, "creating output file")
	}

	res, err := Write(f, gen, opts)
	if err != nil {
		log.OnError(f.Close)
		return res, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return res, errs.Wrap(errs.IO, err, fmt.Sprintf("closing %s", path))
	}
	return res, nil
}
