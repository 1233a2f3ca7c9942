package middlewares

import (
	"bytes"
	"encoding/xml"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RenderXML renders v as an API response envelope.
func RenderXML(c echo.Context, code int, v any) error {
	payload, err := MarshalEnvelope(v)
	if err != nil {
		return err
	}
	return c.Blob(code, echo.MIMEApplicationXMLCharsetUTF8, payload)
}

// MarshalEnvelope serializes v with a `response' root element.
func MarshalEnvelope(v any) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(xml.Header)

	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: "response"}}); err != nil {
		return nil, errors.Wrap(err, "could not serialize response")
	}

	return b.Bytes(), nil
}
