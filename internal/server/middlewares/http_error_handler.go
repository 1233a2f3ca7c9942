package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewHTTPErrorHandler returns a handler that renders errors as FAILED envelopes.
func NewHTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		switch cause := errors.Cause(err).(type) {
		case *echo.HTTPError:
			log.Warnf("Error [ECHO]: %v", cause.Internal)
			bbberr := bbberror.NewWithCode(cause.Code, "httpError", fmt.Sprint(cause.Message))
			_ = RenderXML(c, cause.Code, bbberr.Response())
		case *bbberror.BBBError:
			status := bbberror.StatusCode(cause)
			if status < 500 {
				_ = RenderXML(c, status, cause.Response())
				return
			}

			internal(log, err, c)
		default:
			internal(log, err, c)
		}
	}
}

func internal(log logrus.FieldLogger, err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	log.WithField("id", id).Errorf("Error: %+v", err)

	bbberr := bbberror.NewWithCode(
		http.StatusInternalServerError,
		"internalError",
		fmt.Sprintf("Unexpected error (id: %s)", id),
	)
	_ = RenderXML(c, bbberr.HTTPCode, bbberr.Response())
}
