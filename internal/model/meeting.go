package model

import (
	"time"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
)

const createDateLayout = "Mon Jan 02 15:04:05 MST 2006"

type (
	// A Meeting represents a database record.
	// The Base ID is used as internal meeting ID.
	Meeting struct {
		Base `msgpack:",inline" storm:"inline"`

		MeetingID         string            `msgpack:"meeting_id"  storm:"unique"`
		Name              string            `msgpack:"name"`
		AttendeePassword  string            `msgpack:"attendee_pw"`
		ModeratorPassword string            `msgpack:"moderator_pw"`
		Welcome           string            `msgpack:"welcome"`
		VoiceBridge       string            `msgpack:"voice_bridge"`
		DialNumber        string            `msgpack:"dial_number"`
		Record            bool              `msgpack:"record"`
		Duration          int               `msgpack:"duration"`
		MaxParticipants   int               `msgpack:"max_participants"`
		Metadata          map[string]string `msgpack:"metadata"`
		Presentations     []string          `msgpack:"presentations"`
		CreateTime        int64             `msgpack:"create_time"`
		Running           bool              `msgpack:"running"`
		HasUserJoined     bool              `msgpack:"has_user_joined"`
		StartTime         int64             `msgpack:"start_time"`
		Attendees         []Attendee        `msgpack:"attendees"`
	}

	// An Attendee is a user who joined a meeting.
	Attendee struct {
		UserID   string `msgpack:"user_id"`
		FullName string `msgpack:"full_name"`
		Role     string `msgpack:"role"`
	}
)

// NewMeeting returns a new Meeting created at the given time.
func NewMeeting(meetingID string, t time.Time) *Meeting {
	return &Meeting{
		MeetingID:  meetingID,
		CreateTime: libbbb.UnixMillisecond(t),
		Metadata:   map[string]string{},
	}
}

// Role returns the role granted by the given password, empty if the password is wrong.
func (m *Meeting) Role(password string) string {
	switch password {
	case m.ModeratorPassword:
		return libbbb.RoleModerator
	case m.AttendeePassword:
		return libbbb.RoleViewer
	default:
		return ""
	}
}

// Join adds an attendee to the meeting and starts it if needed.
func (m *Meeting) Join(a Attendee, t time.Time) {
	if !m.Running {
		m.StartTime = libbbb.UnixMillisecond(t)
	}
	m.Running = true
	m.HasUserJoined = true
	m.Attendees = append(m.Attendees, a)
}

// Serialize returns the meeting as rendered by the API.
func (m *Meeting) Serialize() libbbb.Meeting {
	meeting := libbbb.Meeting{
		MeetingName:       m.Name,
		MeetingID:         m.MeetingID,
		InternalMeetingID: m.ID,
		CreateTime:        m.CreateTime,
		CreateDate:        libbbb.FromUnixMillisecond(m.CreateTime).UTC().Format(createDateLayout),
		VoiceBridge:       m.VoiceBridge,
		DialNumber:        m.DialNumber,
		AttendeePassword:  m.AttendeePassword,
		ModeratorPassword: m.ModeratorPassword,
		Running:           m.Running,
		Duration:          m.Duration,
		HasUserJoined:     m.HasUserJoined,
		Recording:         m.Record && m.Running,
		StartTime:         m.StartTime,
		ParticipantCount:  len(m.Attendees),
		MaxUsers:          m.MaxParticipants,
		Metadata:          m.Metadata,
	}

	for _, a := range m.Attendees {
		if a.Role == libbbb.RoleModerator {
			meeting.ModeratorCount++
		}
		meeting.Attendees = append(meeting.Attendees, libbbb.Attendee{
			UserID:   a.UserID,
			FullName: a.FullName,
			Role:     a.Role,
		})
	}

	return meeting
}
