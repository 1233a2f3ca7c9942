package libbbb

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type (
	// A Result is a decoded API response.
	Result interface {
		// Envelope returns the common part of the response.
		Envelope() *Response
	}

	// A Response is the envelope shared by all the API responses.
	Response struct {
		ReturnCode string `xml:"returncode"`
		MessageKey string `xml:"messageKey,omitempty"`
		Message    string `xml:"message,omitempty"`
		// RawXML is the verbatim response body.
		RawXML string `xml:"-"`
	}
)

// Envelope implements Result.
func (r *Response) Envelope() *Response {
	return r
}

// Success returns true if the server returned SUCCESS.
func (r *Response) Success() bool {
	return r.ReturnCode == ReturnCodeSuccess
}

// Failed returns true if the server returned FAILED.
func (r *Response) Failed() bool {
	return r.ReturnCode == ReturnCodeFailed
}

// Err returns an APIError when the server returned FAILED, nil otherwise.
func (r *Response) Err() error {
	if !r.Failed() {
		return nil
	}
	return &APIError{MessageKey: r.MessageKey, Message: r.Message}
}

// Decode parses the XML body of the given API method into v.
// A body that is not well-formed XML or without return code is a MalformedResponseError.
// A FAILED return code is not an error.
func Decode(method string, body []byte, v Result) error {
	if err := xml.Unmarshal(body, v); err != nil {
		return &MalformedResponseError{Method: method, Err: err}
	}

	r := v.Envelope()
	r.RawXML = string(body)
	r.ReturnCode = strings.TrimSpace(r.ReturnCode)
	r.MessageKey = strings.TrimSpace(r.MessageKey)
	r.Message = strings.TrimSpace(r.Message)

	switch r.ReturnCode {
	case ReturnCodeSuccess, ReturnCodeFailed:
		return nil
	case "":
		return &MalformedResponseError{Method: method, Err: errors.New("missing returncode element")}
	default:
		return &MalformedResponseError{Method: method, Err: errors.Errorf("unknown returncode %q", r.ReturnCode)}
	}
}

// DecodeDocument parses the bare client configuration document returned by getDefaultConfigXML.
// This document has no envelope so a missing return code means SUCCESS,
// as long as the root element is `<config>'.
func DecodeDocument(method string, body []byte, v Result) error {
	err := Decode(method, body, v)
	if err == nil {
		return nil
	}

	r := v.Envelope()
	if r.ReturnCode != "" || r.RawXML == "" {
		// Not well-formed XML or unknown return code.
		return err
	}

	if root := rootElement(body); root != configElement {
		return &MalformedResponseError{Method: method, Err: errors.Errorf("unexpected root element %q", root)}
	}

	r.ReturnCode = ReturnCodeSuccess
	return nil
}

const configElement = "config"

func rootElement(body []byte) string {
	d := xml.NewDecoder(bytes.NewReader(body))
	for {
		token, err := d.Token()
		if err != nil {
			return ""
		}
		if start, ok := token.(xml.StartElement); ok {
			return start.Name.Local
		}
	}
}

////////////////////
//                //
// Records        //
//                //
////////////////////

type (
	// A Meeting is a meeting as described by getMeetings and getMeetingInfo.
	Meeting struct {
		MeetingName           string     `xml:"meetingName"`
		MeetingID             string     `xml:"meetingID"`
		InternalMeetingID     string     `xml:"internalMeetingID"`
		CreateTime            int64      `xml:"createTime"`
		CreateDate            string     `xml:"createDate"`
		VoiceBridge           string     `xml:"voiceBridge"`
		DialNumber            string     `xml:"dialNumber"`
		AttendeePassword      string     `xml:"attendeePW"`
		ModeratorPassword     string     `xml:"moderatorPW"`
		Running               bool       `xml:"running"`
		Duration              int        `xml:"duration"`
		HasUserJoined         bool       `xml:"hasUserJoined"`
		Recording             bool       `xml:"recording"`
		HasBeenForciblyEnded  bool       `xml:"hasBeenForciblyEnded"`
		StartTime             int64      `xml:"startTime"`
		EndTime               int64      `xml:"endTime"`
		ParticipantCount      int        `xml:"participantCount"`
		ListenerCount         int        `xml:"listenerCount"`
		VoiceParticipantCount int        `xml:"voiceParticipantCount"`
		VideoCount            int        `xml:"videoCount"`
		MaxUsers              int        `xml:"maxUsers"`
		ModeratorCount        int        `xml:"moderatorCount"`
		IsBreakout            bool       `xml:"isBreakout"`
		Attendees             []Attendee `xml:"attendees>attendee"`
		Metadata              Metadata   `xml:"metadata,omitempty"`
	}

	// An Attendee is a user connected to a meeting.
	Attendee struct {
		UserID          string   `xml:"userID"`
		FullName        string   `xml:"fullName"`
		Role            string   `xml:"role"`
		IsPresenter     bool     `xml:"isPresenter"`
		IsListeningOnly bool     `xml:"isListeningOnly"`
		HasJoinedVoice  bool     `xml:"hasJoinedVoice"`
		HasVideo        bool     `xml:"hasVideo"`
		ClientType      string   `xml:"clientType,omitempty"`
		CustomData      Metadata `xml:"customdata,omitempty"`
	}

	// A Recording is a recording as described by getRecordings.
	Recording struct {
		RecordID          string           `xml:"recordID"`
		MeetingID         string           `xml:"meetingID"`
		InternalMeetingID string           `xml:"internalMeetingID"`
		Name              string           `xml:"name"`
		IsBreakout        bool             `xml:"isBreakout"`
		Published         bool             `xml:"published"`
		State             string           `xml:"state"`
		StartTime         int64            `xml:"startTime"`
		EndTime           int64            `xml:"endTime"`
		Participants      int              `xml:"participants"`
		Size              int64            `xml:"size,omitempty"`
		Metadata          Metadata         `xml:"metadata,omitempty"`
		Playback          []PlaybackFormat `xml:"playback>format"`
	}

	// A PlaybackFormat is a way to play a recording.
	PlaybackFormat struct {
		Type           string `xml:"type"`
		URL            string `xml:"url"`
		ProcessingTime int64  `xml:"processingTime"`
		Length         int    `xml:"length"` // minutes
		Size           int64  `xml:"size,omitempty"`
	}

	// A Hook is a registered webhook.
	Hook struct {
		HookID        string `xml:"hookID"`
		CallbackURL   string `xml:"callbackURL"`
		MeetingID     string `xml:"meetingID,omitempty"`
		PermanentHook bool   `xml:"permanentHook"`
		RawData       bool   `xml:"rawData"`
	}
)

// CreatedAt returns the creation time of the meeting.
func (m Meeting) CreatedAt() time.Time {
	return FromUnixMillisecond(m.CreateTime)
}

// CreatedDate parses the human readable creation date of the meeting.
// The zone offset is resolved with the creation time.
func (m Meeting) CreatedDate() (time.Time, error) {
	return ParseDateAt(m.CreateDate, m.CreateTime)
}

// Moderators returns the attendees having the moderator role.
func (m Meeting) Moderators() []Attendee {
	var moderators []Attendee
	for _, a := range m.Attendees {
		if a.Role == RoleModerator {
			moderators = append(moderators, a)
		}
	}
	return moderators
}

// StartedAt returns the start time of the recording.
func (r Recording) StartedAt() time.Time {
	return FromUnixMillisecond(r.StartTime)
}

// EndedAt returns the end time of the recording.
func (r Recording) EndedAt() time.Time {
	return FromUnixMillisecond(r.EndTime)
}

////////////////////
//                //
// Results        //
//                //
////////////////////

type (
	// APIVersionResult is the result of the API root.
	APIVersionResult struct {
		Response
		Version    string `xml:"version"`
		APIVersion string `xml:"apiVersion,omitempty"`
		BBBVersion string `xml:"bbbVersion,omitempty"`
	}

	// CreateMeetingResult is the result of create.
	CreateMeetingResult struct {
		Response
		MeetingID            string `xml:"meetingID"`
		InternalMeetingID    string `xml:"internalMeetingID"`
		ParentMeetingID      string `xml:"parentMeetingID,omitempty"`
		AttendeePassword     string `xml:"attendeePW"`
		ModeratorPassword    string `xml:"moderatorPW"`
		CreateTime           int64  `xml:"createTime"`
		VoiceBridge          string `xml:"voiceBridge"`
		DialNumber           string `xml:"dialNumber"`
		CreateDate           string `xml:"createDate"`
		HasUserJoined        bool   `xml:"hasUserJoined"`
		Duration             int    `xml:"duration"`
		HasBeenForciblyEnded bool   `xml:"hasBeenForciblyEnded"`
	}

	// JoinMeetingResult is the result of join when redirect is disabled.
	JoinMeetingResult struct {
		Response
		MeetingID    string `xml:"meeting_id"`
		UserID       string `xml:"user_id"`
		AuthToken    string `xml:"auth_token"`
		SessionToken string `xml:"session_token"`
		GuestStatus  string `xml:"guestStatus,omitempty"`
		URL          string `xml:"url"`
	}

	// EndMeetingResult is the result of end.
	EndMeetingResult struct {
		Response
	}

	// IsMeetingRunningResult is the result of isMeetingRunning.
	IsMeetingRunningResult struct {
		Response
		Running bool `xml:"running"`
	}

	// GetMeetingsResult is the result of getMeetings.
	GetMeetingsResult struct {
		Response
		Meetings []Meeting `xml:"meetings>meeting"`
	}

	// GetMeetingInfoResult is the result of getMeetingInfo.
	GetMeetingInfoResult struct {
		Response
		Meeting
	}

	// GetRecordingsResult is the result of getRecordings.
	GetRecordingsResult struct {
		Response
		Recordings []Recording `xml:"recordings>recording"`
	}

	// PublishRecordingsResult is the result of publishRecordings.
	PublishRecordingsResult struct {
		Response
		Published bool `xml:"published"`
	}

	// DeleteRecordingsResult is the result of deleteRecordings.
	DeleteRecordingsResult struct {
		Response
		Deleted bool `xml:"deleted"`
	}

	// UpdateRecordingsResult is the result of updateRecordings.
	UpdateRecordingsResult struct {
		Response
		Updated bool `xml:"updated"`
	}

	// DefaultConfigXMLResult is the result of getDefaultConfigXML.
	// The configuration is available in RawXML.
	DefaultConfigXMLResult struct {
		Response
	}

	// SetConfigXMLResult is the result of setConfigXML.
	SetConfigXMLResult struct {
		Response
		ConfigToken string `xml:"configToken"`
	}

	// HooksCreateResult is the result of hooks/create.
	HooksCreateResult struct {
		Response
		HookID        string `xml:"hookID"`
		PermanentHook bool   `xml:"permanentHook"`
		RawData       bool   `xml:"rawData"`
	}

	// HooksListResult is the result of hooks/list.
	HooksListResult struct {
		Response
		Hooks []Hook `xml:"hooks>hook"`
	}

	// HooksDestroyResult is the result of hooks/destroy.
	HooksDestroyResult struct {
		Response
		Removed bool `xml:"removed"`
	}
)
