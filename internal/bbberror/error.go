package bbberror

import (
	"fmt"
	"net/http"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
)

// A BBBError represents a FAILED response rendered by the mock server.
// Like the real server, the API errors are rendered with a 200 HTTP status code.
type BBBError struct {
	HTTPCode   int
	MessageKey string
	Message    string
}

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if bbberr, ok := err.(*BBBError); ok {
		return bbberr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new BBBError with the given message key and message.
func New(key, message string) *BBBError {
	return &BBBError{HTTPCode: http.StatusOK, MessageKey: key, Message: message}
}

// NewWithCode returns a new BBBError with the given code, message key and message.
func NewWithCode(code int, key, message string) *BBBError {
	return &BBBError{HTTPCode: code, MessageKey: key, Message: message}
}

// Error implements error interface.
func (e *BBBError) Error() string {
	return e.Message
}

// Response returns the FAILED envelope of the error.
func (e *BBBError) Response() libbbb.Response {
	return libbbb.Response{
		ReturnCode: libbbb.ReturnCodeFailed,
		MessageKey: e.MessageKey,
		Message:    e.Message,
	}
}

//
// Errors returned by the server.
//

// ChecksumError is returned when the request signature does not match.
func ChecksumError() *BBBError {
	return New("checksumError", "You did not pass the checksum security check")
}

// MissingParam is returned when a required parameter is not given.
func MissingParam(name, message string) *BBBError {
	return New("missingParam"+name, message)
}

// MissingMeetingID is returned when the meetingID parameter is not given.
func MissingMeetingID() *BBBError {
	return MissingParam("MeetingID", "You must specify a meeting ID for the meeting.")
}

// MissingRecordID is returned when the recordID parameter is not given.
func MissingRecordID() *BBBError {
	return MissingParam("RecordID", "You must specify one or more a record IDs.")
}

// MeetingNotFound is returned when the meeting does not exist.
func MeetingNotFound() *BBBError {
	return New("notFound", "We could not find a meeting with that meeting ID - perhaps the meeting is not yet running?")
}

// RecordingNotFound is returned when a recording does not exist.
func RecordingNotFound() *BBBError {
	return New("notFound", "We could not find recordings")
}

// InvalidMeetingIdentifier is returned by join when the meeting does not exist.
func InvalidMeetingIdentifier() *BBBError {
	return New("invalidMeetingIdentifier", "The meeting ID that you supplied did not match any existing meetings")
}

// InvalidPassword is returned when the password does not grant access to the call.
func InvalidPassword() *BBBError {
	return New("invalidPassword", "You must supply the moderator password for this call.")
}

// UnknownMethod is returned for a method not handled by the server.
func UnknownMethod() *BBBError {
	return NewWithCode(http.StatusNotFound, "unsupportedRequest", "This request is not supported.")
}

// InvalidMetadataName is returned when a metadata name is not a valid XML element name.
func InvalidMetadataName(name string) *BBBError {
	return New("invalidMetadataName", fmt.Sprintf("The metadata name %q is not a valid XML element name.", name))
}
