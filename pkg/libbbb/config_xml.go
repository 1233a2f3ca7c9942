package libbbb

import "encoding/xml"

// SetConfigXMLParameters are the parameters of the setConfigXML API method.
type SetConfigXMLParameters struct {
	meetingID string
	configXML string
}

// NewSetConfigXMLParameters returns new SetConfigXMLParameters.
// configXML must be a well-formed XML document, usually a modified default config.
func NewSetConfigXMLParameters(meetingID, configXML string) (*SetConfigXMLParameters, error) {
	p := &SetConfigXMLParameters{
		meetingID: meetingID,
		configXML: configXML,
	}
	return p, p.validate()
}

// MeetingID returns the meeting identifier.
func (p *SetConfigXMLParameters) MeetingID() string {
	return p.meetingID
}

// ConfigXML returns the client configuration.
func (p *SetConfigXMLParameters) ConfigXML() string {
	return p.configXML
}

func (p *SetConfigXMLParameters) validate() error {
	if p == nil {
		return validationError("parameters", "must not be nil")
	}
	if err := required("meetingID", p.meetingID); err != nil {
		return err
	}
	if err := required("configXML", p.configXML); err != nil {
		return err
	}

	var v struct{}
	if err := xml.Unmarshal([]byte(p.configXML), &v); err != nil {
		return validationError("configXML", "must be a well-formed XML document")
	}
	return nil
}

// Params implements Parameters.
func (p *SetConfigXMLParameters) Params() (Query, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var q Query
	q.Add("configXML", p.configXML)
	q.Add("meetingID", p.meetingID)
	return q, nil
}
