package writer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/tealeg/xlsx"

	x "github.com/oniryk-labs/oniryk-xlsx/model/xlsx"
)

func zipEntries(t *testing.T, buf []byte) map[string][]byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		t.Fatal(err)
	}
	entries := make(map[string][]byte, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		entries[f.Name] = data
	}
	return entries
}

func TestBuildParts(t *testing.T) {
	sst := NewStringTable()
	sheet := NewSheetWriter(sst)
	sheet.AddRows([]Row{
		{"Name", "Age"},
		{"John", 25},
	})

	buf, err := Build(sheet, sst)
	if err != nil {
		t.Fatal(err)
	}
	defer sst.Destroy()

	entries := zipEntries(t, buf)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	expected := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/_rels/workbook.xml.rels",
		"xl/sharedStrings.xml",
		"xl/styles.xml",
		"xl/workbook.xml",
		"xl/worksheets/sheet1.xml",
	}
	if len(names) != len(expected) {
		t.Fatalf("Container has parts %v, expected: %v", names, expected)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("Container has parts %v, expected: %v", names, expected)
		}
	}

	var types x.ContentTypes
	if err := xml.Unmarshal(entries["[Content_Types].xml"], &types); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, o := range types.Override {
		if o.PartName == "/xl/sharedStrings.xml" {
			found = true
		}
	}
	if !found {
		t.Error("Content types do not declare the shared-string part")
	}
}

func TestBuildWithoutTextOmitsSharedStrings(t *testing.T) {
	sst := NewStringTable()
	sheet := NewSheetWriter(sst)
	sheet.AddRows([]Row{
		{1, 2.5, nil},
		{time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)},
	})

	buf, err := Build(sheet, sst)
	if err != nil {
		t.Fatal(err)
	}
	defer sst.Destroy()

	entries := zipEntries(t, buf)
	if _, ok := entries["xl/sharedStrings.xml"]; ok {
		t.Error("Shared-string part present with no text cells")
	}
	var types x.ContentTypes
	if err := xml.Unmarshal(entries["[Content_Types].xml"], &types); err != nil {
		t.Fatal(err)
	}
	for _, o := range types.Override {
		if o.PartName == "/xl/sharedStrings.xml" {
			t.Error("Content types declare an absent shared-string part")
		}
	}
}

func TestBuildStylesPart(t *testing.T) {
	sst := NewStringTable()
	sheet := NewSheetWriter(sst)
	sheet.AddRow(Row{1})

	buf, err := Build(sheet, sst)
	if err != nil {
		t.Fatal(err)
	}
	defer sst.Destroy()

	var styles x.StyleSheet
	if err := xml.Unmarshal(zipEntries(t, buf)["xl/styles.xml"], &styles); err != nil {
		t.Fatal(err)
	}
	if expected, got := 1, styles.NumFmts.Count; got != expected {
		t.Fatalf("Custom number formats == %d, expected: %d", got, expected)
	}
	if expected, got := "yyyy-mm-dd", styles.NumFmts.NumFmt[0].FormatCode; got != expected {
		t.Errorf("Date format == %q, expected: %q", got, expected)
	}
	// Style 1 is the only consumer of the date format.
	if expected, got := 2, len(styles.CellXfs.Xf); got != expected {
		t.Fatalf("Cell styles == %d, expected: %d", got, expected)
	}
	if styles.CellXfs.Xf[1].NumFmtID != styles.NumFmts.NumFmt[0].NumFmtID {
		t.Error("Cell style 1 does not reference the date format")
	}
}

func TestBuildRemovesTempArtifacts(t *testing.T) {
	sst := NewStringTable()
	sheet := NewSheetWriter(sst)
	sheet.AddRow(Row{"temp"})

	sheetFile := sheet.sink.Name()
	sstFile := sst.sink.Name()

	if _, err := Build(sheet, sst); err != nil {
		t.Fatal(err)
	}
	defer sst.Destroy()

	for _, name := range []string{sheetFile, sstFile} {
		if _, err := os.Stat(name); !os.IsNotExist(err) {
			t.Errorf("Temp artifact %q was not removed", name)
		}
	}
}

func TestBuildRoundTrip(t *testing.T) {
	sst := NewStringTable()
	sheet := NewSheetWriter(sst)
	sheet.SetColumnWidth(0, 18)
	sheet.AddRows([]Row{
		{"Month", "Salesman", "Total"},
		{"January", "John", 1250.5},
		{"January", "Jane", 2000},
		{time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC), nil, "Month"},
	})

	buf, err := Build(sheet, sst)
	if err != nil {
		t.Fatal(err)
	}
	defer sst.Destroy()

	file, err := xlsx.OpenBinary(buf)
	if err != nil {
		t.Fatalf("Generated workbook cannot be opened: %s", err.Error())
	}
	if expected, got := 1, len(file.Sheets); got != expected {
		t.Fatalf("Workbook has %d sheets, expected: %d", got, expected)
	}
	rows := file.Sheets[0].Rows
	if expected, got := 4, len(rows); got != expected {
		t.Fatalf("Sheet has %d rows, expected: %d", got, expected)
	}

	for _, tc := range []struct {
		row, col int
		value    string
	}{
		{0, 0, "Month"},
		{0, 1, "Salesman"},
		{1, 0, "January"},
		{1, 1, "John"},
		{1, 2, "1250.5"},
		{2, 2, "2000"},
		{3, 0, "38719"},
		{3, 2, "Month"},
	} {
		if got := rows[tc.row].Cells[tc.col].Value; got != tc.value {
			t.Errorf("Cell (%d,%d) == %q, expected: %q", tc.row, tc.col, got, tc.value)
		}
	}

	// "Month" and "January" repeat; the table deduplicates them.
	if expected, got := 6, sst.Size(); got != expected {
		t.Errorf("Shared strings == %d, expected: %d", got, expected)
	}
}
