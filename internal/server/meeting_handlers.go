package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
	"github.com/mdouchement/bigbluebutton/internal/database"
	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// meeting contains all meeting handlers.
type meeting struct {
	db database.Client
}

///// Create
////
//

type createParams struct {
	MeetingID       string `query:"meetingID"`
	Name            string `query:"name"`
	AttendeePW      string `query:"attendeePW"`
	ModeratorPW     string `query:"moderatorPW"`
	Welcome         string `query:"welcome"`
	VoiceBridge     string `query:"voiceBridge"`
	DialNumber      string `query:"dialNumber"`
	Record          bool   `query:"record"`
	Duration        int    `query:"duration"`
	MaxParticipants int    `query:"maxParticipants"`
}

// Create creates a meeting, or returns the existing one with the same meeting ID.
// Presentations can be sent in a modules XML body.
func (h *meeting) Create(c echo.Context) error {
	var params createParams
	if err := c.Bind(&params); err != nil {
		return err
	}

	if params.MeetingID == "" {
		return bbberror.MissingMeetingID()
	}

	meta, err := metadata(c)
	if err != nil {
		return err
	}

	var presentations []libbbb.Presentation
	if c.Request().Method == http.MethodPost {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return errors.Wrap(err, "could not read body")
		}

		if len(body) > 0 {
			presentations, err = libbbb.UnmarshalPresentations(body)
			if err != nil {
				return bbberror.New("invalidRequestBody", "The request body could not be parsed.")
			}
		}
	}

	m, err := h.db.FindMeeting(params.MeetingID)
	if err == nil {
		r := created(m)
		r.MessageKey = "duplicateWarning"
		r.Message = "This conference was already in existence and may currently be in progress."
		return render(c, r)
	}
	if !h.db.IsNotFound(err) {
		return err
	}

	m = model.NewMeeting(params.MeetingID, time.Now())
	m.Name = or(params.Name, params.MeetingID)
	m.AttendeePassword = or(params.AttendeePW, randomPassword())
	m.ModeratorPassword = or(params.ModeratorPW, randomPassword())
	m.Welcome = params.Welcome
	m.VoiceBridge = or(params.VoiceBridge, fmt.Sprintf("7%04d", m.CreateTime%10000))
	m.DialNumber = params.DialNumber
	m.Record = params.Record
	m.Duration = params.Duration
	m.MaxParticipants = params.MaxParticipants
	m.Metadata = meta
	for _, p := range presentations {
		if p.Embedded() {
			m.Presentations = append(m.Presentations, p.Name)
			continue
		}
		m.Presentations = append(m.Presentations, p.URL)
	}

	if err = h.db.Save(m); err != nil {
		return err
	}

	return render(c, created(m))
}

func created(m *model.Meeting) libbbb.CreateMeetingResult {
	meeting := m.Serialize()

	return libbbb.CreateMeetingResult{
		Response:          success("", ""),
		MeetingID:         meeting.MeetingID,
		InternalMeetingID: meeting.InternalMeetingID,
		AttendeePassword:  meeting.AttendeePassword,
		ModeratorPassword: meeting.ModeratorPassword,
		CreateTime:        meeting.CreateTime,
		VoiceBridge:       meeting.VoiceBridge,
		DialNumber:        meeting.DialNumber,
		CreateDate:        meeting.CreateDate,
		HasUserJoined:     meeting.HasUserJoined,
		Duration:          meeting.Duration,
	}
}

///// Join
////
//

// Join adds a user to a meeting.
// The browser is redirected to the web client unless redirect=false.
func (h *meeting) Join(c echo.Context) error {
	meetingID := c.QueryParam("meetingID")
	if meetingID == "" {
		return bbberror.MissingMeetingID()
	}

	fullName := c.QueryParam("fullName")
	if fullName == "" {
		return bbberror.MissingParam("FullName", "You must specify a name for the attendee who will be joining the meeting.")
	}

	m, err := h.db.FindMeeting(meetingID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return bbberror.InvalidMeetingIdentifier()
		}
		return err
	}

	role := m.Role(c.QueryParam("password"))
	if role == "" {
		return bbberror.New("invalidPassword", "You either did not supply a password or the password supplied is neither the attendee or moderator password for this conference.")
	}

	if token := c.QueryParam("configToken"); token != "" {
		if _, err = h.db.FindConfigXML(token); err != nil {
			if h.db.IsNotFound(err) {
				return bbberror.New("configTokenNotFound", "We could not find a config for this request.")
			}
			return err
		}
	}

	userID := paramOr(c, "userID", "w_"+randomPassword())
	m.Join(model.Attendee{
		UserID:   userID,
		FullName: fullName,
		Role:     role,
	}, time.Now())

	if err = h.db.Save(m); err != nil {
		return err
	}

	token := randomPassword()
	url := paramOr(c, "clientURL", fmt.Sprintf("%s/html5client/join", baseURL(c))) + "?sessionToken=" + token

	if c.QueryParam("redirect") != "false" {
		return c.Redirect(http.StatusFound, url)
	}

	return render(c, libbbb.JoinMeetingResult{
		Response:     success("successfullyJoined", "You have joined successfully."),
		MeetingID:    m.ID,
		UserID:       userID,
		AuthToken:    randomPassword(),
		SessionToken: token,
		URL:          url,
	})
}

///// End
////
//

// End ends a meeting, publishing its recording if the meeting was recorded.
func (h *meeting) End(c echo.Context) error {
	meetingID := c.QueryParam("meetingID")
	if meetingID == "" {
		return bbberror.MissingMeetingID()
	}

	m, err := h.db.FindMeeting(meetingID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return bbberror.MeetingNotFound()
		}
		return err
	}

	if c.QueryParam("password") != m.ModeratorPassword {
		return bbberror.InvalidPassword()
	}

	if m.Record {
		if err = h.db.Save(model.NewRecording(m, time.Now())); err != nil {
			return err
		}
	}

	if err = h.db.DeleteMeetingConfigXMLs(m.MeetingID); err != nil {
		return err
	}

	if err = h.db.Delete(m); err != nil {
		return err
	}

	return render(c, libbbb.EndMeetingResult{
		Response: success("sentEndMeetingRequest", "A request to end the meeting was sent. Please wait a few seconds, and then use the getMeetingInfo or isMeetingRunning API calls to verify that it was ended."),
	})
}

///// IsMeetingRunning
////
//

// IsMeetingRunning returns whether someone joined the meeting.
// An unknown meeting is not running.
func (h *meeting) IsMeetingRunning(c echo.Context) error {
	meetingID := c.QueryParam("meetingID")
	if meetingID == "" {
		return bbberror.MissingMeetingID()
	}

	m, err := h.db.FindMeeting(meetingID)
	if err != nil && !h.db.IsNotFound(err) {
		return err
	}

	return render(c, libbbb.IsMeetingRunningResult{
		Response: success("", ""),
		Running:  m != nil && m.Running,
	})
}

///// List
////
//

// List returns all the meetings.
func (h *meeting) List(c echo.Context) error {
	meetings, err := h.db.FindMeetings()
	if err != nil {
		return err
	}

	r := libbbb.GetMeetingsResult{
		Response: success("", ""),
	}
	if len(meetings) == 0 {
		r.Response = success("noMeetings", "no meetings were found on this server")
	}

	for _, m := range meetings {
		r.Meetings = append(r.Meetings, m.Serialize())
	}

	return render(c, r)
}

///// Info
////
//

// Info describes a meeting. The moderator password is required.
func (h *meeting) Info(c echo.Context) error {
	meetingID := c.QueryParam("meetingID")
	if meetingID == "" {
		return bbberror.MissingMeetingID()
	}

	m, err := h.db.FindMeeting(meetingID)
	if err != nil {
		if h.db.IsNotFound(err) {
			return bbberror.MeetingNotFound()
		}
		return err
	}

	if c.QueryParam("password") != m.ModeratorPassword {
		return bbberror.InvalidPassword()
	}

	return render(c, libbbb.GetMeetingInfoResult{
		Response: success("", ""),
		Meeting:  m.Serialize(),
	})
}

//
// helpers
//

func paramOr(c echo.Context, name, fallback string) string {
	return or(c.QueryParam(name), fallback)
}

func or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func randomPassword() string {
	return uuid.Must(uuid.NewV4()).String()[:8]
}
