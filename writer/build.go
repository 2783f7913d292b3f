// Package writer implements a streaming single-worksheet XLSX generator: a
// shared string table and a worksheet row encoder that emit XML in
// bounded-size batches through temp-file sinks, and the assembly step that
// merges the generated parts with fixed boilerplate parts into one zip
// container buffer.
package writer

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Build runs both generators and assembles the final workbook container.
//
// The worksheet is generated first because row encoding is what populates
// the string table; the table part is generated and included only when at
// least one text cell was seen. Fixed boilerplate parts go in as in-memory
// entries, generated parts by their temp-file location. On success the temp
// artifacts are deleted best-effort; a failed deletion is logged and
// swallowed. On failure the artifacts are left behind for the caller.
func Build(sheet *SheetWriter, sst *StringTable) ([]byte, error) {
	sheetSink, err := sheet.Generate()
	if err != nil {
		return nil, err
	}
	temps := []string{sheetSink.Name()}

	withStrings := sst.Size() > 0
	var sstSink Sink
	if withStrings {
		if sstSink, err = sst.Generate(); err != nil {
			return nil, err
		}
		temps = append(temps, sstSink.Name())
	}

	pkg := NewPackage()
	fixed := []struct {
		path string
		data string
	}{
		{pathContentTypes, contentTypesXML(withStrings)},
		{pathRootRels, rootRelsXML},
		{pathWorkbook, workbookXML},
		{pathWorkbookRels, workbookRelsXML},
		{pathStyles, stylesXML},
	}
	for _, part := range fixed {
		if err := pkg.AddEntry(part.path, []byte(part.data)); err != nil {
			return nil, err
		}
	}
	if err := pkg.AddEntryFromFile(pathSheet, sheetSink.Name()); err != nil {
		return nil, err
	}
	if withStrings {
		if err := pkg.AddEntryFromFile(pathSharedStrings, sstSink.Name()); err != nil {
			return nil, err
		}
	}

	out, err := pkg.Bytes()
	if err != nil {
		return nil, err
	}
	removeTemps(temps)
	return out, nil
}

func removeTemps(names []string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := os.Remove(name); err != nil {
			log.Warnf("Failed to remove temp artifact %q: %s", name, err.Error())
		}
	}
}
