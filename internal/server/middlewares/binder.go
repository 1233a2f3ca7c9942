package middlewares

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
)

type binder struct {
	echo.DefaultBinder
}

// NewBinder returns a wrapp of the default binder implementation reading the API parameters.
func NewBinder() echo.Binder {
	return &binder{}
}

// Bind implements the echo.Bind interface.
// API parameters always travel in the query string, even for POST requests,
// so the body is left to the handlers (create's presentations, setConfigXML's form).
// A parameter with a wrong type is rendered as a FAILED envelope.
func (b *binder) Bind(i any, c echo.Context) error {
	if err := b.DefaultBinder.BindQueryParams(c, i); err != nil {
		message := err.Error()
		if herr, ok := err.(*echo.HTTPError); ok {
			message = fmt.Sprint(herr.Message)
		}
		return bbberror.New("invalidParameter", message)
	}
	return nil
}
