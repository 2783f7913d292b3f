package writer

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// rowBatchSize is the number of rows encoded and flushed per write. A batch
// boundary never falls inside a row.
const rowBatchSize = 2500

const sheetHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
	`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`

// Row is one worksheet row; the slice position is the 0-based column index.
// Cell values may be nil (empty cell), string, any numeric kind, or
// time.Time; everything else is stringified and shared-string encoded.
type Row []interface{}

// ColumnWidth pairs a 0-based column index with its width override.
type ColumnWidth struct {
	Col   int
	Width float64
}

// SheetWriter buffers rows and column-width overrides and streams the
// worksheet XML part in bounded batches. Text cells are registered in the
// StringTable the writer was constructed with, so the table must outlive
// the writer and its generation must run after the writer's.
type SheetWriter struct {
	sst        *StringTable
	rows       []Row
	widths     []ColumnWidth
	widthIndex map[int]int
	sink       Sink
	batchSize  int
	generated  bool
}

// NewSheetWriter returns a writer bound to sst with its output channel
// reserved. The writer is single-use: one Generate run per instance.
func NewSheetWriter(sst *StringTable) *SheetWriter {
	return &SheetWriter{
		sst:        sst,
		widthIndex: make(map[int]int),
		sink:       newFileSink("sheet"),
		batchSize:  rowBatchSize,
	}
}

// AddRow appends one row to the buffer. No validation happens here; cell
// values are interpreted during generation.
func (w *SheetWriter) AddRow(row Row) {
	w.rows = append(w.rows, row)
}

// AddRows appends rows in order.
func (w *SheetWriter) AddRows(rows []Row) {
	w.rows = append(w.rows, rows...)
}

// RowsCount returns the number of buffered rows.
func (w *SheetWriter) RowsCount() int {
	return len(w.rows)
}

// SetColumnWidth overrides the width of a 0-based column. A later call for
// the same column wins. Negative indices and non-positive widths are
// silently ignored.
func (w *SheetWriter) SetColumnWidth(col int, width float64) {
	if col < 0 || width <= 0 {
		return
	}
	if i, ok := w.widthIndex[col]; ok {
		w.widths[i].Width = width
		return
	}
	w.widthIndex[col] = len(w.widths)
	w.widths = append(w.widths, ColumnWidth{Col: col, Width: width})
}

// SetColumnWidths applies the pairs in order, so later pairs for the same
// column win.
func (w *SheetWriter) SetColumnWidths(widths ...ColumnWidth) {
	for _, cw := range widths {
		w.SetColumnWidth(cw.Col, cw.Width)
	}
}

// Generate streams the worksheet XML part to the writer's sink and
// finalizes it. Rows are flushed in batches so peak memory stays bounded by
// one batch independent of the total row count.
func (w *SheetWriter) Generate() (Sink, error) {
	if w.generated {
		return nil, fmt.Errorf("writer: sheet already generated")
	}
	w.generated = true

	var buf bytes.Buffer
	buf.WriteString(sheetHeader)
	w.encodeColumns(&buf)
	buf.WriteString("<sheetData>")

	for i, row := range w.rows {
		w.encodeRow(&buf, row, i+1)
		if (i+1)%w.batchSize == 0 {
			if _, err := w.sink.Write(buf.Bytes()); err != nil {
				return nil, err
			}
			buf.Reset()
		}
	}

	buf.WriteString("</sheetData></worksheet>")
	if _, err := w.sink.Write(buf.Bytes()); err != nil {
		return nil, err
	}
	if err := w.sink.Finalize(); err != nil {
		return nil, err
	}
	return w.sink, nil
}

// encodeColumns emits the optional <cols> block, one entry per configured
// column in insertion order. No numeric sort is applied.
func (w *SheetWriter) encodeColumns(buf *bytes.Buffer) {
	if len(w.widths) == 0 {
		return
	}
	buf.WriteString("<cols>")
	for _, cw := range w.widths {
		fmt.Fprintf(buf, `<col min="%d" max="%d" width="%s" customWidth="1"/>`,
			cw.Col+1, cw.Col+1, strconv.FormatFloat(cw.Width, 'f', -1, 64))
	}
	buf.WriteString("</cols>")
}

func (w *SheetWriter) encodeRow(buf *bytes.Buffer, row Row, num int) {
	fmt.Fprintf(buf, `<row r="%d">`, num)
	for col, value := range row {
		w.encodeCell(buf, value, ColumnName(col)+strconv.Itoa(num))
	}
	buf.WriteString("</row>")
}

// encodeCell dispatches on the dynamic type of the cell value. Unknown
// kinds are not rejected: they are stringified and deduplicated as text.
func (w *SheetWriter) encodeCell(buf *bytes.Buffer, value interface{}, ref string) {
	switch v := value.(type) {
	case nil:
		fmt.Fprintf(buf, `<c r="%s"/>`, ref)
	case string:
		fmt.Fprintf(buf, `<c r="%s" t="s"><v>%d</v></c>`, ref, w.sst.Add(v))
	case time.Time:
		fmt.Fprintf(buf, `<c r="%s" s="1"><v>%s</v></c>`, ref, formatSerial(dateToSerial(v)))
	case float64:
		fmt.Fprintf(buf, `<c r="%s"><v>%s</v></c>`, ref, strconv.FormatFloat(v, 'g', -1, 64))
	case float32:
		fmt.Fprintf(buf, `<c r="%s"><v>%s</v></c>`, ref, strconv.FormatFloat(float64(v), 'g', -1, 32))
	case int:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case int64:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case int32:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case int16:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case int8:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case uint:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case uint64:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case uint32:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case uint16:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	case uint8:
		fmt.Fprintf(buf, `<c r="%s"><v>%d</v></c>`, ref, v)
	default:
		fmt.Fprintf(buf, `<c r="%s" t="s"><v>%d</v></c>`, ref, w.sst.Add(fmt.Sprint(v)))
	}
}
