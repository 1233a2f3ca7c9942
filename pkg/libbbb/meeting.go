package libbbb

// EndMeetingParameters are the parameters of the end API method.
type EndMeetingParameters struct {
	meetingID string
	password  string
}

// NewEndMeetingParameters returns new EndMeetingParameters.
// The password must be the moderator password.
func NewEndMeetingParameters(meetingID, password string) (*EndMeetingParameters, error) {
	p := &EndMeetingParameters{
		meetingID: meetingID,
		password:  password,
	}
	return p, p.validate()
}

// MeetingID returns the meeting identifier.
func (p *EndMeetingParameters) MeetingID() string {
	return p.meetingID
}

// Password returns the moderator password.
func (p *EndMeetingParameters) Password() string {
	return p.password
}

func (p *EndMeetingParameters) validate() error {
	if p == nil {
		return validationError("parameters", "must not be nil")
	}
	if err := required("meetingID", p.meetingID); err != nil {
		return err
	}
	return required("password", p.password)
}

// Params implements Parameters.
func (p *EndMeetingParameters) Params() (Query, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var q Query
	q.Add("meetingID", p.meetingID)
	q.Add("password", p.password)
	return q, nil
}

////////////////////////

// IsMeetingRunningParameters are the parameters of the isMeetingRunning API method.
type IsMeetingRunningParameters struct {
	meetingID string
}

// NewIsMeetingRunningParameters returns new IsMeetingRunningParameters.
func NewIsMeetingRunningParameters(meetingID string) (*IsMeetingRunningParameters, error) {
	p := &IsMeetingRunningParameters{meetingID: meetingID}
	return p, required("meetingID", p.meetingID)
}

// MeetingID returns the meeting identifier.
func (p *IsMeetingRunningParameters) MeetingID() string {
	return p.meetingID
}

// Params implements Parameters.
func (p *IsMeetingRunningParameters) Params() (Query, error) {
	if p == nil {
		return nil, validationError("parameters", "must not be nil")
	}
	if err := required("meetingID", p.meetingID); err != nil {
		return nil, err
	}

	var q Query
	q.Add("meetingID", p.meetingID)
	return q, nil
}

////////////////////////

// GetMeetingInfoParameters are the parameters of the getMeetingInfo API method.
type GetMeetingInfoParameters struct {
	meetingID string
	password  string
}

// NewGetMeetingInfoParameters returns new GetMeetingInfoParameters.
// The password must be the moderator password.
func NewGetMeetingInfoParameters(meetingID, password string) (*GetMeetingInfoParameters, error) {
	p := &GetMeetingInfoParameters{
		meetingID: meetingID,
		password:  password,
	}
	return p, p.validate()
}

// MeetingID returns the meeting identifier.
func (p *GetMeetingInfoParameters) MeetingID() string {
	return p.meetingID
}

// Password returns the moderator password.
func (p *GetMeetingInfoParameters) Password() string {
	return p.password
}

func (p *GetMeetingInfoParameters) validate() error {
	if p == nil {
		return validationError("parameters", "must not be nil")
	}
	if err := required("meetingID", p.meetingID); err != nil {
		return err
	}
	return required("password", p.password)
}

// Params implements Parameters.
func (p *GetMeetingInfoParameters) Params() (Query, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var q Query
	q.Add("meetingID", p.meetingID)
	q.Add("password", p.password)
	return q, nil
}
