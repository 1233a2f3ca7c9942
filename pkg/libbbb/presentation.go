package libbbb

import (
	"encoding/base64"
	"encoding/xml"

	"github.com/pkg/errors"
)

// A Presentation is a document preloaded in a meeting.
// It is either referenced by its URL or embedded with its name and content.
type Presentation struct {
	URL     string
	Name    string
	Content []byte
}

// Embedded returns true if the document content is sent along with the create request.
func (p Presentation) Embedded() bool {
	return p.Content != nil
}

type (
	modules struct {
		XMLName xml.Name `xml:"modules"`
		Modules []module `xml:"module"`
	}

	module struct {
		Name      string     `xml:"name,attr"`
		Documents []document `xml:"document"`
	}

	document struct {
		URL     string `xml:"url,attr,omitempty"`
		Name    string `xml:"name,attr,omitempty"`
		Content string `xml:",chardata"`
	}
)

func marshalPresentations(presentations []Presentation) ([]byte, error) {
	m := module{Name: "presentation"}
	for _, p := range presentations {
		if p.Embedded() {
			m.Documents = append(m.Documents, document{
				Name:    p.Name,
				Content: base64.StdEncoding.EncodeToString(p.Content),
			})
			continue
		}

		m.Documents = append(m.Documents, document{URL: p.URL})
	}

	payload, err := xml.Marshal(modules{Modules: []module{m}})
	return payload, errors.Wrap(err, "could not serialize presentations")
}

// UnmarshalPresentations parses the modules XML body sent along with a create request.
func UnmarshalPresentations(payload []byte) ([]Presentation, error) {
	var body modules
	if err := xml.Unmarshal(payload, &body); err != nil {
		return nil, errors.Wrap(err, "could not parse modules")
	}

	var presentations []Presentation
	for _, m := range body.Modules {
		if m.Name != "presentation" {
			continue
		}

		for _, d := range m.Documents {
			if d.URL != "" {
				presentations = append(presentations, Presentation{URL: d.URL})
				continue
			}

			content, err := base64.StdEncoding.DecodeString(d.Content)
			if err != nil {
				return nil, errors.Wrapf(err, "could not decode document %s", d.Name)
			}
			presentations = append(presentations, Presentation{Name: d.Name, Content: content})
		}
	}

	return presentations, nil
}
