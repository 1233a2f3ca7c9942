package libbbb_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type doer struct {
	requests []*http.Request
	bodies   []string
	status   int
	body     string
	err      error
}

func (d *doer) Do(req *http.Request) (*http.Response, error) {
	d.requests = append(d.requests, req)
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	d.bodies = append(d.bodies, string(body))

	if d.err != nil {
		return nil, d.err
	}

	status := d.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(d.body)),
	}, nil
}

func newClient(t *testing.T, d *doer) libbbb.Client {
	client, err := libbbb.NewClient(d, libbbb.Config{BaseURL: base, Secret: secret})
	assert.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	_, err := libbbb.NewClient(nil, libbbb.Config{Secret: secret})
	assertValidationError(t, err, "base_url")

	_, err = libbbb.NewDefaultClient(base, "")
	assertValidationError(t, err, "secret")

	_, err = libbbb.NewURLClient(libbbb.Config{BaseURL: "bbb.example.com", Secret: secret})
	assertValidationError(t, err, "base_url")
}

func TestClient_NoTransport(t *testing.T) {
	client, err := libbbb.NewURLClient(libbbb.Config{BaseURL: base, Secret: secret})
	assert.NoError(t, err)

	params, err := libbbb.NewIsMeetingRunningParameters("m42")
	assert.NoError(t, err)

	u, err := client.IsMeetingRunningURL(params)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, base+"/isMeetingRunning?meetingID=m42&checksum="))

	assert.Equal(t, base+"/getMeetings?checksum=2027baa7771026e9e93392f55031535d1444c41f", client.GetMeetingsURL())
	assert.Equal(t, base, client.APIVersionURL())

	_, err = client.IsMeetingRunning(params)
	assert.Equal(t, libbbb.ErrNoTransport, err)
	_, err = client.GetMeetings()
	assert.Equal(t, libbbb.ErrNoTransport, err)
	_, err = client.APIVersion()
	assert.Equal(t, libbbb.ErrNoTransport, err)
}

func TestClient_URLValidation(t *testing.T) {
	client, err := libbbb.NewURLClient(libbbb.Config{BaseURL: base, Secret: secret})
	assert.NoError(t, err)

	_, err = client.EndMeetingURL(&libbbb.EndMeetingParameters{})
	assertValidationError(t, err, "meetingID")

	_, err = client.EndMeetingURL(nil)
	assertValidationError(t, err, "parameters")

	u, err := client.GetRecordingsURL(nil)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, base+"/getRecordings?checksum="))

	u, err = client.HooksListURL(nil)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, base+"/hooks/list?checksum="))
}

func TestClient_Request(t *testing.T) {
	d := &doer{body: `<response><returncode>SUCCESS</returncode><running>true</running></response>`}
	client := newClient(t, d)

	params, err := libbbb.NewIsMeetingRunningParameters("m42")
	assert.NoError(t, err)

	r, err := client.IsMeetingRunning(params)
	assert.NoError(t, err)
	assert.True(t, r.Success())
	assert.True(t, r.Running)

	assert.Len(t, d.requests, 1)
	req := d.requests[0]
	u, err := client.IsMeetingRunningURL(params)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, u, req.URL.String())
	assert.Equal(t, "application/xml", req.Header.Get("Accept"))
}

func TestClient_Failed(t *testing.T) {
	d := &doer{body: `<response><returncode>FAILED</returncode><messageKey>notFound</messageKey><message>We could not find a meeting</message></response>`}
	client := newClient(t, d)

	params, err := libbbb.NewEndMeetingParameters("m42", "mp")
	assert.NoError(t, err)

	r, err := client.EndMeeting(params)
	assert.NoError(t, err)
	assert.True(t, r.Failed())
	assert.Equal(t, "notFound", r.MessageKey)
	assert.Error(t, r.Err())
}

func TestClient_TransportError(t *testing.T) {
	client := newClient(t, &doer{err: errors.New("connection refused")})

	_, err := client.GetMeetings()
	var terr *libbbb.TransportError
	if assert.True(t, errors.As(err, &terr)) {
		assert.Equal(t, libbbb.MethodGetMeetings, terr.Method)
		assert.Zero(t, terr.StatusCode)
		assert.EqualError(t, terr.Err, "connection refused")
	}

	client = newClient(t, &doer{status: http.StatusBadGateway, body: "<html>Bad Gateway</html>"})
	_, err = client.GetMeetings()
	if assert.True(t, errors.As(err, &terr)) {
		assert.Equal(t, http.StatusBadGateway, terr.StatusCode)
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newClient(t, &doer{body: "Welcome to nginx!"})

	_, err := client.GetMeetings()
	var merr *libbbb.MalformedResponseError
	assert.True(t, errors.As(err, &merr))
}

func TestClient_JoinMeetingRedirect(t *testing.T) {
	d := &doer{body: `<response><returncode>SUCCESS</returncode></response>`}
	client := newClient(t, d)

	params, err := libbbb.NewJoinMeetingParameters("m42", "George", "ap")
	assert.NoError(t, err)

	_, err = client.JoinMeeting(params)
	assert.NoError(t, err)
	assert.Nil(t, params.Redirect)

	params.SetRedirect(true)
	_, err = client.JoinMeeting(params)
	assert.NoError(t, err)
	assert.True(t, *params.Redirect)

	params.SetRedirect(false)
	_, err = client.JoinMeeting(params)
	assert.NoError(t, err)

	assert.Len(t, d.requests, 3)
	for _, req := range d.requests {
		assert.Equal(t, "false", req.URL.Query().Get("redirect"))
	}

	// The URL keeps the redirection for browsers.
	params.SetRedirect(true)
	u, err := client.JoinMeetingURL(params)
	assert.NoError(t, err)
	assert.Contains(t, u, "&redirect=true&")

	_, err = client.JoinMeeting(nil)
	assertValidationError(t, err, "parameters")
}

func TestClient_CreateMeetingWithPresentations(t *testing.T) {
	d := &doer{body: `<response><returncode>SUCCESS</returncode><meetingID>m42</meetingID></response>`}
	client := newClient(t, d)

	params, err := libbbb.NewCreateMeetingParameters("m42", "Meeting")
	assert.NoError(t, err)

	_, err = client.CreateMeeting(params)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodGet, d.requests[0].Method)

	assert.NoError(t, params.AddPresentation("https://example.com/a.pdf"))
	r, err := client.CreateMeeting(params)
	assert.NoError(t, err)
	assert.Equal(t, "m42", r.MeetingID)

	req := d.requests[1]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/xml", req.Header.Get("Content-Type"))
	u, err := client.CreateMeetingURL(params)
	assert.NoError(t, err)
	assert.Equal(t, u, req.URL.String())

	body, err := params.PresentationsXML()
	assert.NoError(t, err)
	assert.Equal(t, string(body), d.bodies[1])
}

func TestClient_SetConfigXML(t *testing.T) {
	d := &doer{body: `<response><returncode>SUCCESS</returncode><configToken>token42</configToken></response>`}
	client := newClient(t, d)

	params, err := libbbb.NewSetConfigXMLParameters("m42", "<config/>")
	assert.NoError(t, err)

	r, err := client.SetConfigXML(params)
	assert.NoError(t, err)
	assert.Equal(t, "token42", r.ConfigToken)

	req := d.requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, base+"/setConfigXML", req.URL.String())
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

	signer := libbbb.Signer{Secret: secret}
	encoded := "configXML=%3Cconfig%2F%3E&meetingID=m42"
	assert.Equal(t, encoded+"&checksum="+signer.Sign(libbbb.MethodSetConfigXML, encoded), d.bodies[0])
}

func TestClient_GetDefaultConfigXML(t *testing.T) {
	config := `<config><version>2.0</version></config>`
	client := newClient(t, &doer{body: config})

	r, err := client.GetDefaultConfigXML()
	assert.NoError(t, err)
	assert.True(t, r.Success())
	assert.Equal(t, config, r.RawXML)
}

func TestClient_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf)

	client, err := libbbb.NewClient(&doer{body: `<response><returncode>SUCCESS</returncode></response>`}, libbbb.Config{BaseURL: base, Secret: secret}, libbbb.WithLogger(logger))
	assert.NoError(t, err)

	_, err = client.GetMeetings()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "method=getMeetings")
	assert.NotContains(t, buf.String(), secret)
	assert.NotContains(t, buf.String(), "checksum")
}

func newLogger(w io.Writer) logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	return logger
}
