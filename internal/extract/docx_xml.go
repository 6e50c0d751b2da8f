package extract

import (
	"encoding/xml"
	"io"
	"strings"
)

// stripDocxXML reduces word/document.xml content to plain text. Each
// closed w:p becomes a blank-line paragraph boundary, each w:br a
// single newline.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if buf.Len() == 0 {
				continue
			}
			switch t.Name.Local {
			case "p":
				buf.WriteString("\n\n")
			case "br":
				buf.WriteString("\n")
			}
		}
	}
	return buf.String()
}
