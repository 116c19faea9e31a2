// Package dartxml models the DART input documents this tool generates.
// The structs mirror the element and attribute layout DART expects;
// marshaling them with Render produces the final file bytes.
package dartxml

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Build and version stamps carried by every generated DartFile root.
const (
	FileBuild   = "v1410"
	FileVersion = "5.10.6"
)

// Empty marks an element that DART requires to be present but carries
// no attributes or children.
type Empty struct{}

// Render marshals a document with the XML declaration and four-space
// indentation. Output is deterministic: attribute order follows struct
// field order.
func Render(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// Ftoa formats a float the way DART files carry them: shortest exact
// decimal representation.
func Ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
