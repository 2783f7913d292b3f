package writer

// Column names A..ZZ are precomputed once so that the per-cell lookup in the
// row encoder stays O(1) for the usual column range.
const precomputedColumns = 702

var columnNames = buildColumnNames()

func buildColumnNames() [precomputedColumns]string {
	var names [precomputedColumns]string
	for i := range names {
		names[i] = formatColumnName(i)
	}
	return names
}

// formatColumnName converts a 0-based column index into the bijective
// base-26 letter name: 0 -> "A", 25 -> "Z", 26 -> "AA", 701 -> "ZZ".
func formatColumnName(index int) string {
	buf := make([]byte, 0, 3)
	for index >= 0 {
		buf = append(buf, byte('A'+index%26))
		index = index/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnName returns the letter name of a 0-based column index.
func ColumnName(index int) string {
	if index < precomputedColumns {
		return columnNames[index]
	}
	return formatColumnName(index)
}
