package model_test

import (
	"testing"
	"time"

	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/stretchr/testify/assert"
)

func TestMeeting_Role(t *testing.T) {
	m := model.NewMeeting("m42", time.Now())
	m.AttendeePassword = "ap"
	m.ModeratorPassword = "mp"

	assert.Equal(t, libbbb.RoleModerator, m.Role("mp"))
	assert.Equal(t, libbbb.RoleViewer, m.Role("ap"))
	assert.Equal(t, "", m.Role("trololo"))
	assert.Equal(t, "", m.Role(""))
}

func TestMeeting_Join(t *testing.T) {
	created := time.Date(2017, time.January, 4, 10, 22, 47, 0, time.UTC)
	m := model.NewMeeting("m42", created)
	assert.False(t, m.Running)

	m.Join(model.Attendee{UserID: "u1", Role: libbbb.RoleModerator}, created.Add(time.Minute))
	m.Join(model.Attendee{UserID: "u2", Role: libbbb.RoleViewer}, created.Add(time.Hour))

	assert.True(t, m.Running)
	assert.True(t, m.HasUserJoined)
	assert.Equal(t, libbbb.UnixMillisecond(created.Add(time.Minute)), m.StartTime)
	assert.Len(t, m.Attendees, 2)
}

func TestMeeting_Serialize(t *testing.T) {
	created := time.Date(2017, time.January, 4, 10, 22, 47, 0, time.UTC)
	m := model.NewMeeting("m42", created)
	m.ID = "internal42"
	m.Name = "Weekly sync"
	m.Record = true
	m.MaxParticipants = 10
	m.Metadata["origin"] = "bbbc"
	m.Join(model.Attendee{UserID: "u1", FullName: "George", Role: libbbb.RoleModerator}, created)
	m.Join(model.Attendee{UserID: "u2", FullName: "Jacques", Role: libbbb.RoleViewer}, created)

	meeting := m.Serialize()
	assert.Equal(t, "m42", meeting.MeetingID)
	assert.Equal(t, "internal42", meeting.InternalMeetingID)
	assert.Equal(t, "Weekly sync", meeting.MeetingName)
	assert.Equal(t, "Wed Jan 04 10:22:47 UTC 2017", meeting.CreateDate)
	assert.Equal(t, int64(1483525367000), meeting.CreateTime)
	assert.True(t, meeting.Running)
	assert.True(t, meeting.Recording)
	assert.Equal(t, 2, meeting.ParticipantCount)
	assert.Equal(t, 1, meeting.ModeratorCount)
	assert.Equal(t, 10, meeting.MaxUsers)
	assert.Equal(t, libbbb.Metadata{"origin": "bbbc"}, meeting.Metadata)
	assert.Equal(t, "Jacques", meeting.Attendees[1].FullName)
}
