// Package xlsx holds raw mappings of the XML parts the writer produces.
// They are deliberately shaped after the emitted documents and are used to
// unmarshal and inspect generated output.
package xlsx

import "encoding/xml"

// Sst maps the shared-string part (xl/sharedStrings.xml).
type Sst struct {
	XMLName     xml.Name `xml:"sst"`
	Xmlns       string   `xml:"xmlns,attr"`
	Count       int      `xml:"count,attr"`
	UniqueCount int      `xml:"uniqueCount,attr"`
	Si          []struct {
		T string `xml:"t"`
	} `xml:"si"`
}
