package server_test

import (
	"net/http"
	"testing"

	"github.com/appleboy/gofight"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/server"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/stretchr/testify/assert"
)

func TestRequestGetDefaultConfigXML(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET(signed(libbbb.MethodGetDefaultConfigXML, libbbb.Query{})).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.Equal(t, server.DefaultConfigXML, r.Body.String())

		var result libbbb.DefaultConfigXMLResult
		err := libbbb.DecodeDocument(libbbb.MethodGetDefaultConfigXML, r.Body.Bytes(), &result)
		assert.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, server.DefaultConfigXML, result.RawXML)
	})
}

func TestRequestSetConfigXML(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	createMeeting(ctrl, "m42")

	form := func(meetingID, content string) string {
		query := encode(libbbb.NewSetConfigXMLParameters(meetingID, content))
		return query.Encode() + "&checksum=" + libbbb.Signer{Secret: secret}.Sign(libbbb.MethodSetConfigXML, query.Encode())
	}
	header := gofight.H{
		"Content-Type": echo.MIMEApplicationForm,
	}
	path := server.DefaultBasePath + "/" + libbbb.MethodSetConfigXML

	var token string
	r.POST(path).SetHeader(header).SetBody(form("m42", "<config><version>2.0</version></config>")).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var result libbbb.SetConfigXMLResult
		err := libbbb.Decode(libbbb.MethodSetConfigXML, r.Body.Bytes(), &result)
		assert.NoError(t, err)
		assert.True(t, result.Success())
		assert.NotEmpty(t, result.ConfigToken)
		token = result.ConfigToken
	})

	cfg, err := ctrl.Database.FindConfigXML(token)
	assert.NoError(t, err)
	assert.Equal(t, "m42", cfg.MeetingID)
	assert.Equal(t, "<config><version>2.0</version></config>", cfg.Content)

	r.POST(path).SetHeader(header).SetBody(form("unknown", "<config/>")).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assertFailed(t, r, "notFound")
	})

	r.POST(path).SetHeader(header).SetBody(form("m42", "<config/>") + "42").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assertFailed(t, r, "checksumError")
	})
}
