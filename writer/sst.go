package writer

import (
	"bytes"
	"fmt"
)

// sstBatchSize is the number of <si> entries flushed per write. Batches
// never split a single entry.
const sstBatchSize = 5000

const sstHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
	`<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="%d" uniqueCount="%d">`

// StringTable deduplicates text cell values into stable integer ids for the
// shared-string part of the workbook. One table is shared by reference with
// the sheet writers of a single build; concurrent Add calls from several
// goroutines must be serialized by the caller.
type StringTable struct {
	entries   []string
	index     map[string]int
	sink      Sink
	generated bool
}

// NewStringTable returns an empty table with its output channel reserved.
func NewStringTable() *StringTable {
	return &StringTable{
		index: make(map[string]int),
		sink:  newFileSink("sst"),
	}
}

// Add returns the id of s, appending it when seen for the first time. Ids
// are assigned sequentially from zero in insertion order.
func (t *StringTable) Add(s string) int {
	if id, ok := t.index[s]; ok {
		return id
	}
	id := len(t.entries)
	t.entries = append(t.entries, s)
	t.index[s] = id
	return id
}

// Size returns the number of unique strings held.
func (t *StringTable) Size() int {
	return len(t.entries)
}

// Generate streams the shared-string XML part to the table's sink and
// finalizes it. It must not run before the worksheet generation that
// populates the table has completed, or emitted cell ids would dangle.
// The header reports count equal to uniqueCount; repeats of a string are
// not tallied separately.
func (t *StringTable) Generate() (Sink, error) {
	if t.generated {
		return nil, fmt.Errorf("writer: string table already generated")
	}
	t.generated = true

	var buf bytes.Buffer
	fmt.Fprintf(&buf, sstHeader, len(t.entries), len(t.entries))
	for i, s := range t.entries {
		buf.WriteString("<si><t>")
		buf.WriteString(escapeXML(s))
		buf.WriteString("</t></si>")
		if (i+1)%sstBatchSize == 0 {
			if _, err := t.sink.Write(buf.Bytes()); err != nil {
				return nil, err
			}
			buf.Reset()
		}
	}
	buf.WriteString("</sst>")
	if _, err := t.sink.Write(buf.Bytes()); err != nil {
		return nil, err
	}
	if err := t.sink.Finalize(); err != nil {
		return nil, err
	}
	return t.sink, nil
}

// Destroy drops the entry list and the lookup index so a long-lived caller
// can reclaim the memory once the workbook is packaged.
func (t *StringTable) Destroy() {
	t.entries = nil
	t.index = nil
}
