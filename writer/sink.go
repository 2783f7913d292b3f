package writer

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/oniryk-labs/oniryk-xlsx/utils"
)

var errSinkFinalized = errors.New("writer: sink already finalized")

// Sink is the chunked append-only output channel a generator streams its
// batches into. Append order is preserved and the content must not be read
// before Finalize returns. A sink is single-use: it is acquired when the
// generator is constructed and spent by one generation run.
type Sink interface {
	io.Writer

	// Finalize flushes and seals the sink. No writes may follow.
	Finalize() error

	// Name reports the file backing the sink, or "" for in-memory sinks.
	Name() string
}

// fileSink spools batches into a temp file so that peak memory stays bounded
// by one batch regardless of the total row count. The file is created on the
// first write; the name is reserved up front.
type fileSink struct {
	name      string
	file      *os.File
	finalized bool
}

func newFileSink(prefix string) *fileSink {
	return &fileSink{name: utils.TempFileName(prefix, ".xml")}
}

func (s *fileSink) Write(p []byte) (int, error) {
	if s.finalized {
		return 0, errSinkFinalized
	}
	if s.file == nil {
		f, err := os.Create(s.name)
		if err != nil {
			return 0, err
		}
		s.file = f
	}
	return s.file.Write(p)
}

func (s *fileSink) Finalize() error {
	if s.finalized {
		return errSinkFinalized
	}
	s.finalized = true
	if s.file == nil {
		// Nothing was streamed. Still materialize the file so the
		// assembler can pick it up by name.
		f, err := os.Create(s.name)
		if err != nil {
			return err
		}
		s.file = f
	}
	return s.file.Close()
}

func (s *fileSink) Name() string {
	return s.name
}

// memorySink collects everything in a buffer. Used by tests and callers that
// want the generated part without touching the filesystem.
type memorySink struct {
	buf       bytes.Buffer
	finalized bool
}

func newMemorySink() *memorySink {
	return &memorySink{}
}

func (s *memorySink) Write(p []byte) (int, error) {
	if s.finalized {
		return 0, errSinkFinalized
	}
	return s.buf.Write(p)
}

func (s *memorySink) Finalize() error {
	if s.finalized {
		return errSinkFinalized
	}
	s.finalized = true
	return nil
}

func (s *memorySink) Name() string { return "" }

func (s *memorySink) Bytes() []byte { return s.buf.Bytes() }
