package database

import "github.com/mdouchement/bigbluebutton/internal/model"

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool

		MeetingInteraction
		RecordingInteraction
		HookInteraction
		ConfigXMLInteraction
	}

	// A MeetingInteraction defines all the methods used to interact with a meeting record.
	MeetingInteraction interface {
		// FindMeeting returns the meeting for the given meeting ID (not the internal one).
		FindMeeting(meetingID string) (*model.Meeting, error)
		// FindMeetings returns all the meetings ordered by creation time.
		FindMeetings() ([]*model.Meeting, error)
	}

	// A RecordingInteraction defines all the methods used to interact with a recording record.
	RecordingInteraction interface {
		// FindRecording returns the recording for the given record ID.
		FindRecording(recordID string) (*model.Recording, error)
		// FindRecordings returns all the recordings matching the given filters ordered by start time.
		// An empty filter matches everything.
		FindRecordings(meetingIDs, recordIDs, states []string) ([]*model.Recording, error)
	}

	// A HookInteraction defines all the methods used to interact with a hook record.
	HookInteraction interface {
		// FindHook returns the hook for the given id.
		FindHook(id string) (*model.Hook, error)
		// FindHookByCallback returns the hook registered for the given callback URL and meeting ID.
		FindHookByCallback(callbackURL, meetingID string) (*model.Hook, error)
		// FindHooks returns the global hooks and the ones of the given meeting.
		// An empty meeting ID returns all the hooks.
		FindHooks(meetingID string) ([]*model.Hook, error)
	}

	// A ConfigXMLInteraction defines all the methods used to interact with a client configuration record.
	ConfigXMLInteraction interface {
		// FindConfigXML returns the configuration for the given token.
		FindConfigXML(token string) (*model.ConfigXML, error)
		// DeleteMeetingConfigXMLs removes all the configurations of the given meeting.
		DeleteMeetingConfigXMLs(meetingID string) error
	}
)
