package model

import "github.com/mdouchement/bigbluebutton/pkg/libbbb"

// A Hook represents a database record.
type Hook struct {
	Base `msgpack:",inline" storm:"inline"`

	CallbackURL string `msgpack:"callback_url" storm:"index"`
	MeetingID   string `msgpack:"meeting_id"   storm:"index"`
	RawData     bool   `msgpack:"raw_data"`
}

// Serialize returns the hook as rendered by the API.
func (h *Hook) Serialize() libbbb.Hook {
	return libbbb.Hook{
		HookID:        h.ID,
		CallbackURL:   h.CallbackURL,
		MeetingID:     h.MeetingID,
		PermanentHook: false,
		RawData:       h.RawData,
	}
}

// A ConfigXML represents a database record.
// The Base ID is the config token given to join.
type ConfigXML struct {
	Base `msgpack:",inline" storm:"inline"`

	MeetingID string `msgpack:"meeting_id" storm:"index"`
	Content   string `msgpack:"content"`
}
