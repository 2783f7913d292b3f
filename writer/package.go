package writer

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Package is the zip container the workbook parts are assembled into. It
// accepts in-memory parts and local files and serializes to one buffer.
type Package struct {
	buf bytes.Buffer
	zw  *zip.Writer
}

// NewPackage returns an empty container.
func NewPackage() *Package {
	p := &Package{}
	p.zw = zip.NewWriter(&p.buf)
	return p
}

// AddEntry stores data under path inside the container.
func (p *Package) AddEntry(path string, data []byte) error {
	w, err := p.zw.Create(path)
	if err != nil {
		return fmt.Errorf("package: create %q: %w", path, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("package: write %q: %w", path, err)
	}
	return nil
}

// AddEntryFromFile stores the content of the local file source under target
// inside the container.
func (p *Package) AddEntryFromFile(target, source string) error {
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("package: open %q: %w", source, err)
	}
	defer f.Close()

	w, err := p.zw.Create(target)
	if err != nil {
		return fmt.Errorf("package: create %q: %w", target, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("package: copy %q: %w", source, err)
	}
	return nil
}

// Bytes closes the container and returns the serialized archive.
func (p *Package) Bytes() ([]byte, error) {
	if err := p.zw.Close(); err != nil {
		return nil, fmt.Errorf("package: close: %w", err)
	}
	return p.buf.Bytes(), nil
}
