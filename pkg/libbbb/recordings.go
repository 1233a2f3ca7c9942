package libbbb

import "strconv"

// GetRecordingsParameters are the parameters of the getRecordings API method.
// All the fields are optional, a nil or empty value lists all the recordings.
type GetRecordingsParameters struct {
	MeetingID string
	RecordID  string
	State     string // see RecordingState constants
	Meta      map[string]string
}

// Params implements Parameters.
func (p *GetRecordingsParameters) Params() (Query, error) {
	var q Query
	if p == nil {
		return q, nil
	}
	if err := metadata("meta", p.Meta); err != nil {
		return nil, err
	}

	q.AddString("meetingID", p.MeetingID)
	q.AddString("recordID", p.RecordID)
	q.AddString("state", p.State)
	q.AddPrefixed(metaPrefix, p.Meta)
	return q, nil
}

////////////////////////

// PublishRecordingsParameters are the parameters of the publishRecordings API method.
type PublishRecordingsParameters struct {
	recordIDs []string
	publish   bool
}

// NewPublishRecordingsParameters returns new PublishRecordingsParameters.
func NewPublishRecordingsParameters(publish bool, recordIDs ...string) (*PublishRecordingsParameters, error) {
	p := &PublishRecordingsParameters{
		recordIDs: recordIDs,
		publish:   publish,
	}
	_, err := identifiers("recordID", p.recordIDs)
	return p, err
}

// RecordIDs returns the recording identifiers.
func (p *PublishRecordingsParameters) RecordIDs() []string {
	return p.recordIDs
}

// Publish returns true if the recordings are published, false if they are hidden.
func (p *PublishRecordingsParameters) Publish() bool {
	return p.publish
}

// Params implements Parameters.
func (p *PublishRecordingsParameters) Params() (Query, error) {
	if p == nil {
		return nil, validationError("parameters", "must not be nil")
	}
	ids, err := identifiers("recordID", p.recordIDs)
	if err != nil {
		return nil, err
	}

	var q Query
	q.Add("recordID", ids)
	q.Add("publish", strconv.FormatBool(p.publish))
	return q, nil
}

////////////////////////

// DeleteRecordingsParameters are the parameters of the deleteRecordings API method.
type DeleteRecordingsParameters struct {
	recordIDs []string
}

// NewDeleteRecordingsParameters returns new DeleteRecordingsParameters.
func NewDeleteRecordingsParameters(recordIDs ...string) (*DeleteRecordingsParameters, error) {
	p := &DeleteRecordingsParameters{recordIDs: recordIDs}
	_, err := identifiers("recordID", p.recordIDs)
	return p, err
}

// RecordIDs returns the recording identifiers.
func (p *DeleteRecordingsParameters) RecordIDs() []string {
	return p.recordIDs
}

// Params implements Parameters.
func (p *DeleteRecordingsParameters) Params() (Query, error) {
	if p == nil {
		return nil, validationError("parameters", "must not be nil")
	}
	ids, err := identifiers("recordID", p.recordIDs)
	if err != nil {
		return nil, err
	}

	var q Query
	q.Add("recordID", ids)
	return q, nil
}

////////////////////////

// UpdateRecordingsParameters are the parameters of the updateRecordings API method.
// Metadata with an empty value are removed from the recordings.
type UpdateRecordingsParameters struct {
	recordIDs []string

	Meta map[string]string
}

// NewUpdateRecordingsParameters returns new UpdateRecordingsParameters.
func NewUpdateRecordingsParameters(recordIDs ...string) (*UpdateRecordingsParameters, error) {
	p := &UpdateRecordingsParameters{recordIDs: recordIDs}
	_, err := identifiers("recordID", p.recordIDs)
	return p, err
}

// RecordIDs returns the recording identifiers.
func (p *UpdateRecordingsParameters) RecordIDs() []string {
	return p.recordIDs
}

// Params implements Parameters.
func (p *UpdateRecordingsParameters) Params() (Query, error) {
	if p == nil {
		return nil, validationError("parameters", "must not be nil")
	}
	ids, err := identifiers("recordID", p.recordIDs)
	if err != nil {
		return nil, err
	}
	if err = metadata("meta", p.Meta); err != nil {
		return nil, err
	}

	var q Query
	q.Add("recordID", ids)
	q.AddPrefixed(metaPrefix, p.Meta)
	return q, nil
}
