package xlsx

import "encoding/xml"

// Workbook maps the workbook definition part (xl/workbook.xml).
type Workbook struct {
	XMLName xml.Name `xml:"workbook"`
	Sheets  struct {
		Sheet []struct {
			Name    string `xml:"name,attr"`
			SheetID int    `xml:"sheetId,attr"`
		} `xml:"sheet"`
	} `xml:"sheets"`
}

// ContentTypes maps the content-types declaration ([Content_Types].xml).
type ContentTypes struct {
	XMLName  xml.Name `xml:"Types"`
	Override []struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Override"`
}
