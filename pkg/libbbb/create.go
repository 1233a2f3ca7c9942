package libbbb

// CreateMeetingParameters are the parameters of the create API method.
type CreateMeetingParameters struct {
	meetingID     string
	name          string
	presentations []Presentation

	AttendeePassword        string
	ModeratorPassword       string
	Welcome                 string
	DialNumber              string
	VoiceBridge             string
	WebVoice                string
	LogoutURL               string
	Record                  *bool
	Duration                int // minutes
	MaxParticipants         int
	AutoStartRecording      *bool
	AllowStartStopRecording *bool
	ModeratorOnlyMessage    string
	WebcamsOnlyForModerator *bool
	MuteOnStart             *bool
	Logo                    string
	Copyright               string
	Meta                    map[string]string
}

// NewCreateMeetingParameters returns new CreateMeetingParameters.
func NewCreateMeetingParameters(meetingID, name string) (*CreateMeetingParameters, error) {
	p := &CreateMeetingParameters{
		meetingID: meetingID,
		name:      name,
	}
	return p, p.validate()
}

// MeetingID returns the meeting identifier.
func (p *CreateMeetingParameters) MeetingID() string {
	return p.meetingID
}

// Name returns the meeting name.
func (p *CreateMeetingParameters) Name() string {
	return p.name
}

// AddPresentation appends a document to the meeting.
// Without content, nameOrURL is the URL where the server downloads the document.
// With content, the document is embedded in the request and nameOrURL is its filename.
func (p *CreateMeetingParameters) AddPresentation(nameOrURL string, content ...[]byte) error {
	if err := required("presentation", nameOrURL); err != nil {
		return err
	}

	if len(content) > 0 && content[0] != nil {
		p.presentations = append(p.presentations, Presentation{Name: nameOrURL, Content: content[0]})
		return nil
	}

	p.presentations = append(p.presentations, Presentation{URL: nameOrURL})
	return nil
}

// Presentations returns the documents in insertion order.
func (p *CreateMeetingParameters) Presentations() []Presentation {
	return p.presentations
}

// PresentationsXML returns the request body preloading the documents.
// It returns nil when there is no presentation.
func (p *CreateMeetingParameters) PresentationsXML() ([]byte, error) {
	if len(p.presentations) == 0 {
		return nil, nil
	}
	return marshalPresentations(p.presentations)
}

func (p *CreateMeetingParameters) validate() error {
	if p == nil {
		return validationError("parameters", "must not be nil")
	}
	if err := required("meetingID", p.meetingID); err != nil {
		return err
	}
	if err := required("name", p.name); err != nil {
		return err
	}
	return metadata("meta", p.Meta)
}

// Params implements Parameters.
func (p *CreateMeetingParameters) Params() (Query, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var q Query
	q.Add("name", p.name)
	q.Add("meetingID", p.meetingID)
	q.AddString("attendeePW", p.AttendeePassword)
	q.AddString("moderatorPW", p.ModeratorPassword)
	q.AddString("welcome", p.Welcome)
	q.AddString("dialNumber", p.DialNumber)
	q.AddString("voiceBridge", p.VoiceBridge)
	q.AddString("webVoice", p.WebVoice)
	q.AddString("logoutURL", p.LogoutURL)
	q.AddBool("record", p.Record)
	q.AddInt("duration", p.Duration)
	q.AddInt("maxParticipants", p.MaxParticipants)
	q.AddBool("autoStartRecording", p.AutoStartRecording)
	q.AddBool("allowStartStopRecording", p.AllowStartStopRecording)
	q.AddString("moderatorOnlyMessage", p.ModeratorOnlyMessage)
	q.AddBool("webcamsOnlyForModerator", p.WebcamsOnlyForModerator)
	q.AddBool("muteOnStart", p.MuteOnStart)
	q.AddString("logo", p.Logo)
	q.AddString("copyright", p.Copyright)
	q.AddPrefixed(metaPrefix, p.Meta)
	return q, nil
}
