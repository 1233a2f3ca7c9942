package server

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
	"github.com/mdouchement/bigbluebutton/internal/database"
	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// DefaultConfigXML is the client configuration returned by getDefaultConfigXML.
const DefaultConfigXML = `<?xml version="1.0" encoding="UTF-8"?>
<config>
  <localeversion suppressWarning="false">0.9.0</localeversion>
  <version>2.0</version>
  <help url="http://localhost/help.html"/>
  <javaTest url="http://localhost/testjava.html"/>
  <porttest host="localhost" application="video/portTest" timeout="10000"/>
  <bwMon server="localhost" application="video/bwTest"/>
  <application uri="rtmp://localhost/bigbluebutton" host="http://localhost/bigbluebutton/api/enter"/>
  <language userSelectionEnabled="true"/>
  <skinning enabled="true" url="http://localhost/client/branding/css/BBBDefault.css.swf"/>
  <layout showLogButton="false" defaultLayout="bbb.layout.name.defaultlayout" showToolbar="true" showFooter="true" showMeetingName="true" showHelpButton="true" showLogoutWindow="true" showLayoutTools="true" confirmLogout="true" showRecordingNotification="true"/>
  <modules>
    <module name="ChatModule" url="http://localhost/client/ChatModule.swf" uri="rtmp://localhost/bigbluebutton" dependsOn="UsersModule" privateEnabled="true" fontSize="12" position="top-right"/>
    <module name="PresentModule" url="http://localhost/client/PresentModule.swf" uri="rtmp://localhost/bigbluebutton" host="http://localhost" showPresentWindow="true" showWindowControls="true" openExternalFileUploadDialog="false" dependsOn="UsersModule"/>
  </modules>
</config>
`

// config contains all client configuration handlers.
type config struct {
	db database.Client
}

///// Default
////
//

// Default returns the default client configuration, a bare document without envelope.
func (h *config) Default(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, []byte(DefaultConfigXML))
}

///// Set
////
//

// Set stores a client configuration for a meeting and returns its token.
func (h *config) Set(c echo.Context) error {
	meetingID := c.FormValue("meetingID")
	if meetingID == "" {
		return bbberror.MissingMeetingID()
	}

	content := c.FormValue("configXML")
	if content == "" || !wellFormed(content) {
		return bbberror.New("configXMLError", "You did not pass a valid configXML.")
	}

	m, err := h.db.FindMeeting(meetingID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return bbberror.MeetingNotFound()
		}
		return err
	}

	cfg := &model.ConfigXML{
		MeetingID: m.MeetingID,
		Content:   content,
	}
	if err = h.db.Save(cfg); err != nil {
		return errors.Wrap(err, "could not save config xml")
	}

	return render(c, libbbb.SetConfigXMLResult{
		Response:    success("", ""),
		ConfigToken: cfg.ID,
	})
}

func wellFormed(s string) bool {
	d := xml.NewDecoder(strings.NewReader(s))
	for {
		_, err := d.Token()
		if err == io.EOF {
			return true
		}
		if err != nil {
			return false
		}
	}
}
