package libbbb

// HooksCreateParameters are the parameters of the hooks/create API method.
type HooksCreateParameters struct {
	callbackURL string

	MeetingID string // empty for a global hook
	GetRaw    *bool
}

// NewHooksCreateParameters returns new HooksCreateParameters.
func NewHooksCreateParameters(callbackURL string) (*HooksCreateParameters, error) {
	p := &HooksCreateParameters{callbackURL: callbackURL}
	return p, required("callbackURL", p.callbackURL)
}

// CallbackURL returns the URL called on each event.
func (p *HooksCreateParameters) CallbackURL() string {
	return p.callbackURL
}

// Params implements Parameters.
func (p *HooksCreateParameters) Params() (Query, error) {
	if p == nil {
		return nil, validationError("parameters", "must not be nil")
	}
	if err := required("callbackURL", p.callbackURL); err != nil {
		return nil, err
	}

	var q Query
	q.Add("callbackURL", p.callbackURL)
	q.AddString("meetingID", p.MeetingID)
	q.AddBool("getRaw", p.GetRaw)
	return q, nil
}

// HooksListParameters are the parameters of the hooks/list API method.
// A nil value lists all the hooks.
type HooksListParameters struct {
	MeetingID string
}

// Params implements Parameters.
func (p *HooksListParameters) Params() (Query, error) {
	var q Query
	if p != nil {
		q.AddString("meetingID", p.MeetingID)
	}
	return q, nil
}

// HooksDestroyParameters are the parameters of the hooks/destroy API method.
type HooksDestroyParameters struct {
	hookID string
}

// NewHooksDestroyParameters returns new HooksDestroyParameters.
func NewHooksDestroyParameters(hookID string) (*HooksDestroyParameters, error) {
	p := &HooksDestroyParameters{hookID: hookID}
	return p, required("hookID", p.hookID)
}

// HookID returns the hook identifier.
func (p *HooksDestroyParameters) HookID() string {
	return p.hookID
}

// Params implements Parameters.
func (p *HooksDestroyParameters) Params() (Query, error) {
	if p == nil {
		return nil, validationError("parameters", "must not be nil")
	}
	if err := required("hookID", p.hookID); err != nil {
		return nil, err
	}

	var q Query
	q.Add("hookID", p.hookID)
	return q, nil
}
