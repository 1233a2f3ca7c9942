package client

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// CreateOptions are the options of the create command.
type CreateOptions struct {
	MeetingID         string // random when empty
	Name              string // MeetingID when empty
	AttendeePassword  string
	ModeratorPassword string
	Welcome           string
	Record            bool
	Duration          int
	Presentations     []string // URLs or local files
	Meta              map[string]string
}

// Create creates a meeting.
func (c *Command) Create(opts CreateOptions) error {
	if opts.MeetingID == "" {
		opts.MeetingID = uuid.Must(uuid.NewV4()).String()
	}
	if opts.Name == "" {
		opts.Name = opts.MeetingID
	}

	params, err := libbbb.NewCreateMeetingParameters(opts.MeetingID, opts.Name)
	if err != nil {
		return err
	}
	params.AttendeePassword = opts.AttendeePassword
	params.ModeratorPassword = opts.ModeratorPassword
	params.Welcome = opts.Welcome
	params.Duration = opts.Duration
	params.Meta = opts.Meta
	if opts.Record {
		params.Record = libbbb.Bool(true)
	}

	for _, presentation := range opts.Presentations {
		if err = addPresentation(params, presentation); err != nil {
			return err
		}
	}

	r, err := c.client.CreateMeeting(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not create meeting")
	}

	c.message(r)
	c.printf("Meeting ID:         %s\n", r.MeetingID)
	c.printf("Internal ID:        %s\n", r.InternalMeetingID)
	c.printf("Attendee password:  %s\n", r.AttendeePassword)
	c.printf("Moderator password: %s\n", r.ModeratorPassword)
	c.printf("Voice bridge:       %s\n", r.VoiceBridge)
	c.printf("Created at:         %s\n", libbbb.FromUnixMillisecond(r.CreateTime).Format(time.RFC3339))
	return nil
}

func addPresentation(params *libbbb.CreateMeetingParameters, presentation string) error {
	if strings.HasPrefix(presentation, "http://") || strings.HasPrefix(presentation, "https://") {
		return params.AddPresentation(presentation)
	}

	content, err := os.ReadFile(presentation)
	if err != nil {
		return errors.Wrap(err, "could not read presentation")
	}
	return params.AddPresentation(filepath.Base(presentation), content)
}

// URL prints the URL to give to a browser for joining a meeting.
func (c *Command) URL(meetingID, fullName, password string) error {
	params, err := libbbb.NewJoinMeetingParameters(meetingID, fullName, password)
	if err != nil {
		return err
	}

	u, err := c.client.JoinMeetingURL(params)
	if err != nil {
		return err
	}

	c.printf("%s\n", u)
	return nil
}

// Join joins a meeting and prints the URL of the joined session.
func (c *Command) Join(meetingID, fullName, password string) error {
	params, err := libbbb.NewJoinMeetingParameters(meetingID, fullName, password)
	if err != nil {
		return err
	}
	params.SetRedirect(false)

	r, err := c.client.JoinMeeting(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not join meeting")
	}

	c.message(r)
	c.printf("User ID: %s\n", r.UserID)
	c.printf("URL:     %s\n", r.URL)
	return nil
}

// End ends a meeting.
func (c *Command) End(meetingID, password string) error {
	params, err := libbbb.NewEndMeetingParameters(meetingID, password)
	if err != nil {
		return err
	}

	r, err := c.client.EndMeeting(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not end meeting")
	}

	c.message(r)
	return nil
}

// Running prints whether a meeting is running.
func (c *Command) Running(meetingID string) error {
	params, err := libbbb.NewIsMeetingRunningParameters(meetingID)
	if err != nil {
		return err
	}

	r, err := c.client.IsMeetingRunning(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not check meeting")
	}

	c.printf("%t\n", r.Running)
	return nil
}

// Meetings lists the meetings.
func (c *Command) Meetings() error {
	r, err := c.client.GetMeetings()
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not list meetings")
	}

	c.message(r)
	for _, m := range r.Meetings {
		c.printf("%s  %-30s running=%t participants=%d\n", m.MeetingID, m.MeetingName, m.Running, m.ParticipantCount)
	}
	return nil
}

// Info describes a meeting.
func (c *Command) Info(meetingID, password string) error {
	params, err := libbbb.NewGetMeetingInfoParameters(meetingID, password)
	if err != nil {
		return err
	}

	r, err := c.client.GetMeetingInfo(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not get meeting info")
	}

	c.printf("Name:         %s\n", r.MeetingName)
	c.printf("Meeting ID:   %s\n", r.MeetingID)
	c.printf("Created at:   %s\n", r.CreatedAt().Format(time.RFC3339))
	c.printf("Running:      %t\n", r.Running)
	c.printf("Recording:    %t\n", r.Recording)
	c.printf("Participants: %d (%d moderators)\n", r.ParticipantCount, r.ModeratorCount)
	for _, a := range r.Attendees {
		c.printf("  - %s (%s)\n", a.FullName, a.Role)
	}
	if len(r.Metadata) > 0 {
		c.printf("Metadata:\n")
		c.metadata("  ", r.Metadata)
	}
	return nil
}
