package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	for _, m := range models() {
		if err := db.Init(m); err != nil {
			return errors.Wrapf(err, "could not init %T index", m)
		}
	}
	return nil
}

// StormReIndex reindex Storm database.
func StormReIndex(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	for _, m := range models() {
		if err := db.ReIndex(m); err != nil {
			return errors.Wrapf(err, "could not ReIndex %T", m)
		}
	}
	return nil
}

func models() []any {
	return []any{&model.Meeting{}, &model.Recording{}, &model.Hook{}, &model.ConfigXML{}}
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
	}
	if m.GetCreatedAt() == nil {
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// FindMeeting returns the meeting for the given meeting ID (not the internal one).
func (c *strm) FindMeeting(meetingID string) (*model.Meeting, error) {
	var meeting model.Meeting
	if err := c.db.One("MeetingID", meetingID, &meeting); err != nil {
		return nil, errors.Wrap(err, "find meeting by meeting id")
	}
	return &meeting, nil
}

// FindMeetings returns all the meetings ordered by creation time.
func (c *strm) FindMeetings() ([]*model.Meeting, error) {
	meetings := make([]*model.Meeting, 0)
	err := c.db.Select().OrderBy("CreateTime").Find(&meetings)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find meetings")
	}
	return meetings, nil
}

// FindRecording returns the recording for the given record ID.
func (c *strm) FindRecording(recordID string) (*model.Recording, error) {
	var recording model.Recording
	if err := c.db.One("ID", recordID, &recording); err != nil {
		return nil, errors.Wrap(err, "find recording by id")
	}
	return &recording, nil
}

// FindRecordings returns all the recordings matching the given filters ordered by start time.
func (c *strm) FindRecordings(meetingIDs, recordIDs, states []string) ([]*model.Recording, error) {
	var query []q.Matcher
	if len(meetingIDs) > 0 {
		query = append(query, q.In("MeetingID", meetingIDs))
	}
	if len(recordIDs) > 0 {
		query = append(query, q.In("ID", recordIDs))
	}
	if len(states) > 0 {
		query = append(query, q.In("State", states))
	}

	recordings := make([]*model.Recording, 0)
	err := c.db.Select(query...).OrderBy("StartTime").Find(&recordings)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find recordings")
	}
	return recordings, nil
}

// FindHook returns the hook for the given id.
func (c *strm) FindHook(id string) (*model.Hook, error) {
	var hook model.Hook
	if err := c.db.One("ID", id, &hook); err != nil {
		return nil, errors.Wrap(err, "find hook by id")
	}
	return &hook, nil
}

// FindHookByCallback returns the hook registered for the given callback URL and meeting ID.
func (c *strm) FindHookByCallback(callbackURL, meetingID string) (*model.Hook, error) {
	var hook model.Hook
	err := c.db.Select(q.Eq("CallbackURL", callbackURL), q.Eq("MeetingID", meetingID)).First(&hook)
	if err != nil {
		return nil, errors.Wrap(err, "find hook by callback")
	}
	return &hook, nil
}

// FindHooks returns the global hooks and the ones of the given meeting.
func (c *strm) FindHooks(meetingID string) ([]*model.Hook, error) {
	var query []q.Matcher
	if meetingID != "" {
		query = append(query, q.Or(q.Eq("MeetingID", ""), q.Eq("MeetingID", meetingID)))
	}

	hooks := make([]*model.Hook, 0)
	err := c.db.Select(query...).OrderBy("CreatedAt").Find(&hooks)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find hooks")
	}
	return hooks, nil
}

// FindConfigXML returns the configuration for the given token.
func (c *strm) FindConfigXML(token string) (*model.ConfigXML, error) {
	var config model.ConfigXML
	if err := c.db.One("ID", token, &config); err != nil {
		return nil, errors.Wrap(err, "find config xml by token")
	}
	return &config, nil
}

// DeleteMeetingConfigXMLs removes all the configurations of the given meeting.
func (c *strm) DeleteMeetingConfigXMLs(meetingID string) error {
	err := c.db.Select(q.Eq("MeetingID", meetingID)).Delete(&model.ConfigXML{})
	if err != nil && !c.IsNotFound(err) {
		return errors.Wrap(err, "could not delete config xml")
	}
	return nil
}
