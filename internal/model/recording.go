package model

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
)

// A Recording represents a database record.
// The Base ID is the record ID.
type Recording struct {
	Base `msgpack:",inline" storm:"inline"`

	MeetingID    string            `msgpack:"meeting_id"   storm:"index"`
	Name         string            `msgpack:"name"`
	Published    bool              `msgpack:"published"`
	State        string            `msgpack:"state"        storm:"index"`
	StartTime    int64             `msgpack:"start_time"`
	EndTime      int64             `msgpack:"end_time"`
	Participants int               `msgpack:"participants"`
	Metadata     map[string]string `msgpack:"metadata"`
}

// NewRecording returns the published recording of the given meeting ended at the given time.
func NewRecording(m *Meeting, t time.Time) *Recording {
	start := m.StartTime
	if start == 0 {
		start = m.CreateTime
	}

	metadata := map[string]string{}
	for k, v := range m.Metadata {
		metadata[k] = v
	}

	r := &Recording{
		MeetingID:    m.MeetingID,
		Name:         m.Name,
		Published:    true,
		State:        libbbb.RecordingStatePublished,
		StartTime:    start,
		EndTime:      libbbb.UnixMillisecond(t),
		Participants: len(m.Attendees),
		Metadata:     metadata,
	}
	r.ID = RecordID(m.MeetingID, m.CreateTime)
	return r
}

// RecordID returns the record ID of a meeting, formatted like the internal meeting IDs of the server.
func RecordID(meetingID string, createTime int64) string {
	h := sha1.Sum([]byte(meetingID)) // nolint:gosec
	return fmt.Sprintf("%s-%d", hex.EncodeToString(h[:]), createTime)
}

// SetPublished publishes or hides the recording.
func (r *Recording) SetPublished(publish bool) {
	r.Published = publish
	r.State = libbbb.RecordingStateUnpublished
	if publish {
		r.State = libbbb.RecordingStatePublished
	}
}

// Serialize returns the recording as rendered by the API.
func (r *Recording) Serialize(baseURL string) libbbb.Recording {
	recording := libbbb.Recording{
		RecordID:          r.ID,
		MeetingID:         r.MeetingID,
		InternalMeetingID: r.ID,
		Name:              r.Name,
		Published:         r.Published,
		State:             r.State,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Participants:      r.Participants,
		Metadata:          r.Metadata,
	}

	if r.Published {
		recording.Playback = append(recording.Playback, libbbb.PlaybackFormat{
			Type:   "presentation",
			URL:    fmt.Sprintf("%s/playback/presentation/2.3/%s", baseURL, r.ID),
			Length: int((r.EndTime - r.StartTime) / int64(time.Minute/time.Millisecond)),
		})
	}

	return recording
}
