package model_test

import (
	"testing"
	"time"

	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/stretchr/testify/assert"
)

func TestRecordID(t *testing.T) {
	assert.Equal(t, "4d339400ffb7172b8ba8b5962f3f3aa9c39f0513-1483525367000", model.RecordID("m42", 1483525367000))
}

func TestNewRecording(t *testing.T) {
	created := time.Date(2017, time.January, 4, 10, 22, 47, 0, time.UTC)
	m := model.NewMeeting("m42", created)
	m.Name = "Weekly sync"
	m.Metadata["origin"] = "bbbc"
	m.Join(model.Attendee{UserID: "u1"}, created.Add(time.Minute))

	r := model.NewRecording(m, created.Add(31*time.Minute))
	assert.Equal(t, model.RecordID("m42", m.CreateTime), r.ID)
	assert.Equal(t, "m42", r.MeetingID)
	assert.True(t, r.Published)
	assert.Equal(t, libbbb.RecordingStatePublished, r.State)
	assert.Equal(t, m.StartTime, r.StartTime)
	assert.Equal(t, 1, r.Participants)

	// Metadata are copied.
	m.Metadata["origin"] = "changed"
	assert.Equal(t, "bbbc", r.Metadata["origin"])

	recording := r.Serialize("https://bbb.example.com")
	assert.Len(t, recording.Playback, 1)
	assert.Equal(t, "https://bbb.example.com/playback/presentation/2.3/"+r.ID, recording.Playback[0].URL)
	assert.Equal(t, 30, recording.Playback[0].Length)

	r.SetPublished(false)
	assert.False(t, r.Published)
	assert.Equal(t, libbbb.RecordingStateUnpublished, r.State)
	assert.Empty(t, r.Serialize("https://bbb.example.com").Playback)

	r.SetPublished(true)
	assert.Equal(t, libbbb.RecordingStatePublished, r.State)
}
