package libbbb

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type (
	// A Doer performs HTTP requests. *http.Client implements it.
	// Timeouts and cancellation are the responsibility of the Doer.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}

	// A Config holds the server settings of a Client.
	Config struct {
		// BaseURL is the API root (e.g. https://bbb.example.com/bigbluebutton/api).
		BaseURL string
		// Secret is the shared secret of the server (aka security salt).
		Secret string
		// Algorithm is the checksum algorithm, SHA1 when empty.
		Algorithm HashAlgorithm
	}

	// An Option configures a Client.
	Option func(*client)

	// A Client defines all interactions that can be performed on a BigBlueButton server.
	// The XxxURL methods only build the signed URL of the API method,
	// the others perform the request and decode the response.
	//
	// A FAILED return code is not an error: the result is returned and Result.Envelope().Err()
	// converts it to an APIError. Errors are *ValidationError, *TransportError,
	// *MalformedResponseError or ErrNoTransport.
	Client interface {
		// APIVersionURL returns the URL of the API root.
		APIVersionURL() string
		// APIVersion returns the version of the API.
		APIVersion() (*APIVersionResult, error)

		// CreateMeetingURL returns the signed URL creating a meeting.
		// Presentations are not part of the URL.
		CreateMeetingURL(p *CreateMeetingParameters) (string, error)
		// CreateMeeting creates a meeting, uploading its presentations if any.
		CreateMeeting(p *CreateMeetingParameters) (*CreateMeetingResult, error)

		// JoinMeetingURL returns the signed URL to give to a browser for joining a meeting.
		JoinMeetingURL(p *JoinMeetingParameters) (string, error)
		// JoinMeeting joins a meeting without browser redirection.
		// Redirect is always sent as false, the given parameters are left untouched.
		JoinMeeting(p *JoinMeetingParameters) (*JoinMeetingResult, error)

		// EndMeetingURL returns the signed URL ending a meeting.
		EndMeetingURL(p *EndMeetingParameters) (string, error)
		// EndMeeting ends a meeting.
		EndMeeting(p *EndMeetingParameters) (*EndMeetingResult, error)

		// IsMeetingRunningURL returns the signed URL checking whether a meeting is running.
		IsMeetingRunningURL(p *IsMeetingRunningParameters) (string, error)
		// IsMeetingRunning checks whether a meeting is running.
		IsMeetingRunning(p *IsMeetingRunningParameters) (*IsMeetingRunningResult, error)

		// GetMeetingsURL returns the signed URL listing the meetings.
		GetMeetingsURL() string
		// GetMeetings lists the meetings.
		GetMeetings() (*GetMeetingsResult, error)

		// GetMeetingInfoURL returns the signed URL describing a meeting.
		GetMeetingInfoURL(p *GetMeetingInfoParameters) (string, error)
		// GetMeetingInfo describes a meeting.
		GetMeetingInfo(p *GetMeetingInfoParameters) (*GetMeetingInfoResult, error)

		// GetRecordingsURL returns the signed URL listing recordings. p can be nil.
		GetRecordingsURL(p *GetRecordingsParameters) (string, error)
		// GetRecordings lists recordings. p can be nil.
		GetRecordings(p *GetRecordingsParameters) (*GetRecordingsResult, error)

		// PublishRecordingsURL returns the signed URL publishing or hiding recordings.
		PublishRecordingsURL(p *PublishRecordingsParameters) (string, error)
		// PublishRecordings publishes or hides recordings.
		PublishRecordings(p *PublishRecordingsParameters) (*PublishRecordingsResult, error)

		// DeleteRecordingsURL returns the signed URL deleting recordings.
		DeleteRecordingsURL(p *DeleteRecordingsParameters) (string, error)
		// DeleteRecordings deletes recordings.
		DeleteRecordings(p *DeleteRecordingsParameters) (*DeleteRecordingsResult, error)

		// UpdateRecordingsURL returns the signed URL updating the metadata of recordings.
		UpdateRecordingsURL(p *UpdateRecordingsParameters) (string, error)
		// UpdateRecordings updates the metadata of recordings.
		UpdateRecordings(p *UpdateRecordingsParameters) (*UpdateRecordingsResult, error)

		// GetDefaultConfigXMLURL returns the signed URL of the default client configuration.
		GetDefaultConfigXMLURL() string
		// GetDefaultConfigXML returns the default client configuration.
		GetDefaultConfigXML() (*DefaultConfigXMLResult, error)

		// SetConfigXMLURL returns the signed URL registering a client configuration.
		SetConfigXMLURL(p *SetConfigXMLParameters) (string, error)
		// SetConfigXML registers a client configuration for a meeting.
		// The returned token is given to JoinMeetingParameters.ConfigToken.
		SetConfigXML(p *SetConfigXMLParameters) (*SetConfigXMLResult, error)

		// HooksCreateURL returns the signed URL registering a webhook.
		HooksCreateURL(p *HooksCreateParameters) (string, error)
		// HooksCreate registers a webhook.
		HooksCreate(p *HooksCreateParameters) (*HooksCreateResult, error)

		// HooksListURL returns the signed URL listing the webhooks. p can be nil.
		HooksListURL(p *HooksListParameters) (string, error)
		// HooksList lists the webhooks. p can be nil.
		HooksList(p *HooksListParameters) (*HooksListResult, error)

		// HooksDestroyURL returns the signed URL removing a webhook.
		HooksDestroyURL(p *HooksDestroyParameters) (string, error)
		// HooksDestroy removes a webhook.
		HooksDestroy(p *HooksDestroyParameters) (*HooksDestroyResult, error)
	}

	decoder func(method string, body []byte, v Result) error

	client struct {
		http Doer
		urls *URLBuilder
		log  logrus.FieldLogger
	}
)

// Validate returns an error if a required setting is missing.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return validationError("base_url", "must not be empty")
	}
	if c.Secret == "" {
		return validationError("secret", "must not be empty")
	}
	return nil
}

// WithLogger logs the performed requests at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *client) {
		c.log = l
	}
}

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(baseURL, secret string) (Client, error) {
	return NewClient(http.DefaultClient, Config{BaseURL: baseURL, Secret: secret})
}

// NewURLClient returns a new Client without transport.
// Only the URL methods can be used, the others return ErrNoTransport.
func NewURLClient(cfg Config) (Client, error) {
	return NewClient(nil, cfg)
}

// NewClient returns a new Client.
func NewClient(doer Doer, cfg Config, opts ...Option) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	urls, err := NewURLBuilder(cfg.BaseURL, cfg.Secret, cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	c := &client{
		http: doer,
		urls: urls,
		log:  silent,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) APIVersionURL() string {
	return c.urls.BuildRoot()
}

func (c *client) APIVersion() (*APIVersionResult, error) {
	var r APIVersionResult
	return &r, c.get("getApiVersion", c.APIVersionURL(), &r, Decode)
}

func (c *client) CreateMeetingURL(p *CreateMeetingParameters) (string, error) {
	return c.url(MethodCreate, p)
}

func (c *client) CreateMeeting(p *CreateMeetingParameters) (*CreateMeetingResult, error) {
	u, err := c.CreateMeetingURL(p)
	if err != nil {
		return nil, err
	}

	body, err := p.PresentationsXML()
	if err != nil {
		return nil, err
	}

	var r CreateMeetingResult
	if body == nil {
		return &r, c.get(MethodCreate, u, &r, Decode)
	}
	return &r, c.post(MethodCreate, u, "application/xml", body, &r)
}

func (c *client) JoinMeetingURL(p *JoinMeetingParameters) (string, error) {
	return c.url(MethodJoin, p)
}

func (c *client) JoinMeeting(p *JoinMeetingParameters) (*JoinMeetingResult, error) {
	if p != nil {
		// The server only answers with an XML document when it does not redirect.
		noredirect := *p
		noredirect.SetRedirect(false)
		p = &noredirect
	}

	var r JoinMeetingResult
	return &r, c.call(MethodJoin, p, &r)
}

func (c *client) EndMeetingURL(p *EndMeetingParameters) (string, error) {
	return c.url(MethodEnd, p)
}

func (c *client) EndMeeting(p *EndMeetingParameters) (*EndMeetingResult, error) {
	var r EndMeetingResult
	return &r, c.call(MethodEnd, p, &r)
}

func (c *client) IsMeetingRunningURL(p *IsMeetingRunningParameters) (string, error) {
	return c.url(MethodIsMeetingRunning, p)
}

func (c *client) IsMeetingRunning(p *IsMeetingRunningParameters) (*IsMeetingRunningResult, error) {
	var r IsMeetingRunningResult
	return &r, c.call(MethodIsMeetingRunning, p, &r)
}

func (c *client) GetMeetingsURL() string {
	return c.urls.Build(MethodGetMeetings, nil)
}

func (c *client) GetMeetings() (*GetMeetingsResult, error) {
	var r GetMeetingsResult
	return &r, c.get(MethodGetMeetings, c.GetMeetingsURL(), &r, Decode)
}

func (c *client) GetMeetingInfoURL(p *GetMeetingInfoParameters) (string, error) {
	return c.url(MethodGetMeetingInfo, p)
}

func (c *client) GetMeetingInfo(p *GetMeetingInfoParameters) (*GetMeetingInfoResult, error) {
	var r GetMeetingInfoResult
	return &r, c.call(MethodGetMeetingInfo, p, &r)
}

func (c *client) GetRecordingsURL(p *GetRecordingsParameters) (string, error) {
	return c.url(MethodGetRecordings, p)
}

func (c *client) GetRecordings(p *GetRecordingsParameters) (*GetRecordingsResult, error) {
	var r GetRecordingsResult
	return &r, c.call(MethodGetRecordings, p, &r)
}

func (c *client) PublishRecordingsURL(p *PublishRecordingsParameters) (string, error) {
	return c.url(MethodPublishRecordings, p)
}

func (c *client) PublishRecordings(p *PublishRecordingsParameters) (*PublishRecordingsResult, error) {
	var r PublishRecordingsResult
	return &r, c.call(MethodPublishRecordings, p, &r)
}

func (c *client) DeleteRecordingsURL(p *DeleteRecordingsParameters) (string, error) {
	return c.url(MethodDeleteRecordings, p)
}

func (c *client) DeleteRecordings(p *DeleteRecordingsParameters) (*DeleteRecordingsResult, error) {
	var r DeleteRecordingsResult
	return &r, c.call(MethodDeleteRecordings, p, &r)
}

func (c *client) UpdateRecordingsURL(p *UpdateRecordingsParameters) (string, error) {
	return c.url(MethodUpdateRecordings, p)
}

func (c *client) UpdateRecordings(p *UpdateRecordingsParameters) (*UpdateRecordingsResult, error) {
	var r UpdateRecordingsResult
	return &r, c.call(MethodUpdateRecordings, p, &r)
}

func (c *client) GetDefaultConfigXMLURL() string {
	return c.urls.Build(MethodGetDefaultConfigXML, nil)
}

func (c *client) GetDefaultConfigXML() (*DefaultConfigXMLResult, error) {
	var r DefaultConfigXMLResult
	return &r, c.get(MethodGetDefaultConfigXML, c.GetDefaultConfigXMLURL(), &r, DecodeDocument)
}

func (c *client) SetConfigXMLURL(p *SetConfigXMLParameters) (string, error) {
	return c.url(MethodSetConfigXML, p)
}

func (c *client) SetConfigXML(p *SetConfigXMLParameters) (*SetConfigXMLResult, error) {
	if p == nil {
		return nil, validationError("parameters", "must not be nil")
	}

	q, err := p.Params()
	if err != nil {
		return nil, err
	}

	//
	// The parameters are sent as form values, the checksum being the last one.
	encoded := q.Encode()
	body := encoded + "&checksum=" + c.urls.Checksum(MethodSetConfigXML, encoded)
	u := c.urls.BuildRoot() + "/" + MethodSetConfigXML

	var r SetConfigXMLResult
	return &r, c.post(MethodSetConfigXML, u, "application/x-www-form-urlencoded", []byte(body), &r)
}

func (c *client) HooksCreateURL(p *HooksCreateParameters) (string, error) {
	return c.url(MethodHooksCreate, p)
}

func (c *client) HooksCreate(p *HooksCreateParameters) (*HooksCreateResult, error) {
	var r HooksCreateResult
	return &r, c.call(MethodHooksCreate, p, &r)
}

func (c *client) HooksListURL(p *HooksListParameters) (string, error) {
	return c.url(MethodHooksList, p)
}

func (c *client) HooksList(p *HooksListParameters) (*HooksListResult, error) {
	var r HooksListResult
	return &r, c.call(MethodHooksList, p, &r)
}

func (c *client) HooksDestroyURL(p *HooksDestroyParameters) (string, error) {
	return c.url(MethodHooksDestroy, p)
}

func (c *client) HooksDestroy(p *HooksDestroyParameters) (*HooksDestroyResult, error) {
	var r HooksDestroyResult
	return &r, c.call(MethodHooksDestroy, p, &r)
}

////////////////////
//                //
// Transport      //
//                //
////////////////////

// url exports the parameters and builds the signed URL.
// A typed nil pointer is accepted by the parameter sets with only optional fields.
func (c *client) url(method string, p Parameters) (string, error) {
	q, err := p.Params()
	if err != nil {
		return "", err
	}
	return c.urls.Build(method, q), nil
}

func (c *client) call(method string, p Parameters, v Result) error {
	u, err := c.url(method, p)
	if err != nil {
		return err
	}
	return c.get(method, u, v, Decode)
}

func (c *client) get(method, u string, v Result, decode decoder) error {
	if c.http == nil {
		return ErrNoTransport
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "could not build request")
	}
	return c.do(method, req, v, decode)
}

func (c *client) post(method, u, contentType string, body []byte, v Result) error {
	if c.http == nil {
		return ErrNoTransport
	}

	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "could not build request")
	}
	req.Header.Add("Content-Type", contentType)
	return c.do(method, req, v, Decode)
}

func (c *client) do(method string, req *http.Request, v Result, decode decoder) error {
	req.Close = true
	req.Header.Add("Accept", "application/xml")

	log := c.log.WithField("method", method)
	log.WithField("http_method", req.Method).Debug("Performing request")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return &TransportError{Method: method, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Method: method, Err: errors.Wrap(err, "could not read response")}
	}

	//
	// Process response
	if err = decode(method, body, v); err != nil {
		return err
	}

	r := v.Envelope()
	log.WithFields(logrus.Fields{
		"returncode": r.ReturnCode,
		"messageKey": r.MessageKey,
	}).Debug("Response decoded")
	return nil
}
