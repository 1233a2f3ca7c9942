package middlewares

import (
	"bytes"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// Checksum returns a middleware that verifies the checksum of the API calls.
// The API method name is the request path relative to base (e.g. `create', `hooks/list').
// Form values are used instead of the query string for form requests (e.g. setConfigXML).
func Checksum(signer libbbb.Signer, base string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			method := strings.TrimPrefix(strings.TrimPrefix(req.URL.Path, base), "/")

			raw := req.URL.RawQuery
			if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm) {
				body, err := io.ReadAll(req.Body)
				if err != nil {
					return errors.Wrap(err, "could not read form")
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
				raw = string(body)
			}

			query, checksum := SplitChecksum(raw)
			if checksum == "" || !signer.Verify(method, query, checksum) {
				return bbberror.ChecksumError()
			}

			return next(c)
		}
	}
}

// SplitChecksum removes the checksum parameter from the given raw query.
// It returns the remaining query as it was sent and the checksum.
func SplitChecksum(raw string) (query, checksum string) {
	params := strings.Split(raw, "&")
	kept := params[:0]
	for _, p := range params {
		if strings.HasPrefix(p, "checksum=") {
			checksum = strings.TrimPrefix(p, "checksum=")
			continue
		}
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, "&"), checksum
}
