package libbbb

import (
	"encoding/xml"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Metadata holds free-form elements (e.g. meta_ parameters given at creation).
// Nested elements are flattened with a dot separated name.
type Metadata map[string]string

// UnmarshalXML implements xml.Unmarshaler.
func (m *Metadata) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if *m == nil {
		*m = Metadata{}
	}

	_, _, err := m.decode(d, "")
	return err
}

// decode reads the children of the current element until its end.
// It returns the character data of the current element and whether it has children.
func (m Metadata) decode(d *xml.Decoder, prefix string) (string, bool, error) {
	var text strings.Builder
	var children bool

	for {
		token, err := d.Token()
		if err != nil {
			return "", false, errors.Wrap(err, "could not read metadata")
		}

		switch t := token.(type) {
		case xml.StartElement:
			children = true
			name := prefix + t.Name.Local

			value, nested, err := m.decode(d, name+".")
			if err != nil {
				return "", false, err
			}
			if !nested {
				m[name] = value
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return strings.TrimSpace(text.String()), children, nil
		}
	}
}

// MarshalXML implements xml.Marshaler.
// Only flat names are rendered, sorted by name.
func (m Metadata) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := e.EncodeElement(m[name], xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}
