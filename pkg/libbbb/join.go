package libbbb

import "strconv"

// JoinMeetingParameters are the parameters of the join API method.
type JoinMeetingParameters struct {
	meetingID string
	fullName  string
	password  string

	CreateTime   int64 // milliseconds, as returned by create
	UserID       string
	WebVoiceConf string
	ConfigToken  string
	AvatarURL    string
	// Redirect set to false makes the server answer with an XML document
	// instead of redirecting the browser to the web client.
	Redirect  *bool
	ClientURL string
	UserData  map[string]string
}

// NewJoinMeetingParameters returns new JoinMeetingParameters.
// The password defines the role of the user (attendee or moderator).
func NewJoinMeetingParameters(meetingID, fullName, password string) (*JoinMeetingParameters, error) {
	p := &JoinMeetingParameters{
		meetingID: meetingID,
		fullName:  fullName,
		password:  password,
	}
	return p, p.validate()
}

// MeetingID returns the meeting identifier.
func (p *JoinMeetingParameters) MeetingID() string {
	return p.meetingID
}

// FullName returns the display name of the user.
func (p *JoinMeetingParameters) FullName() string {
	return p.fullName
}

// Password returns the password used to join the meeting.
func (p *JoinMeetingParameters) Password() string {
	return p.password
}

// SetRedirect defines whether the server redirects to the web client.
func (p *JoinMeetingParameters) SetRedirect(redirect bool) {
	p.Redirect = Bool(redirect)
}

func (p *JoinMeetingParameters) validate() error {
	if p == nil {
		return validationError("parameters", "must not be nil")
	}
	if err := required("meetingID", p.meetingID); err != nil {
		return err
	}
	if err := required("fullName", p.fullName); err != nil {
		return err
	}
	return required("password", p.password)
}

// Params implements Parameters.
func (p *JoinMeetingParameters) Params() (Query, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var q Query
	q.Add("meetingID", p.meetingID)
	q.Add("fullName", p.fullName)
	q.Add("password", p.password)
	if p.CreateTime > 0 {
		q.Add("createTime", strconv.FormatInt(p.CreateTime, 10))
	}
	q.AddString("userID", p.UserID)
	q.AddString("webVoiceConf", p.WebVoiceConf)
	q.AddString("configToken", p.ConfigToken)
	q.AddString("avatarURL", p.AvatarURL)
	q.AddBool("redirect", p.Redirect)
	q.AddString("clientURL", p.ClientURL)
	q.AddPrefixed(userdataPrefix, p.UserData)
	return q, nil
}
