package xlsx

import "encoding/xml"

// StyleSheet maps the styles part (xl/styles.xml).
type StyleSheet struct {
	XMLName xml.Name `xml:"styleSheet"`
	NumFmts struct {
		Count  int `xml:"count,attr"`
		NumFmt []struct {
			NumFmtID   int    `xml:"numFmtId,attr"`
			FormatCode string `xml:"formatCode,attr"`
		} `xml:"numFmt"`
	} `xml:"numFmts"`
	CellXfs struct {
		Count int `xml:"count,attr"`
		Xf    []struct {
			NumFmtID          int `xml:"numFmtId,attr"`
			ApplyNumberFormat int `xml:"applyNumberFormat,attr"`
		} `xml:"xf"`
	} `xml:"cellXfs"`
}
