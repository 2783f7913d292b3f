package xlsx

import "encoding/xml"

// Worksheet maps the worksheet part (xl/worksheets/sheet1.xml).
type Worksheet struct {
	XMLName xml.Name `xml:"worksheet"`
	Xmlns   string   `xml:"xmlns,attr"`
	Cols    struct {
		Col []struct {
			Min         int     `xml:"min,attr"`
			Max         int     `xml:"max,attr"`
			Width       float64 `xml:"width,attr"`
			CustomWidth int     `xml:"customWidth,attr"`
		} `xml:"col"`
	} `xml:"cols"`
	SheetData struct {
		Row []struct {
			R int `xml:"r,attr"`
			C []struct {
				R string `xml:"r,attr"`
				T string `xml:"t,attr"`
				S string `xml:"s,attr"`
				V string `xml:"v"`
			} `xml:"c"`
		} `xml:"row"`
	} `xml:"sheetData"`
}
