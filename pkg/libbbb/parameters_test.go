package libbbb_test

import (
	"errors"
	"testing"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/stretchr/testify/assert"
)

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()

	var verr *libbbb.ValidationError
	if assert.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err) {
		assert.Equal(t, field, verr.Field)
	}
}

func TestCreateMeetingParameters(t *testing.T) {
	_, err := libbbb.NewCreateMeetingParameters("", "name")
	assertValidationError(t, err, "meetingID")

	_, err = libbbb.NewCreateMeetingParameters("m42", " ")
	assertValidationError(t, err, "name")

	params, err := libbbb.NewCreateMeetingParameters("m42", "Meeting")
	assert.NoError(t, err)
	assert.Equal(t, "m42", params.MeetingID())
	assert.Equal(t, "Meeting", params.Name())

	// Optional fields are absent when unset.
	q, err := params.Params()
	assert.NoError(t, err)
	assert.Equal(t, "name=Meeting&meetingID=m42", q.Encode())

	params.Welcome = "Welcome"
	params.Duration = 60
	params.Record = libbbb.Bool(true)
	params.MuteOnStart = libbbb.Bool(false)
	params.Meta = map[string]string{"origin": "bbbc"}

	q, err = params.Params()
	assert.NoError(t, err)
	assert.Equal(t, "name=Meeting&meetingID=m42&welcome=Welcome&record=true&duration=60&muteOnStart=false&meta_origin=bbbc", q.Encode())
}

func TestCreateMeetingParameters_Presentations(t *testing.T) {
	params, err := libbbb.NewCreateMeetingParameters("m42", "Meeting")
	assert.NoError(t, err)

	body, err := params.PresentationsXML()
	assert.NoError(t, err)
	assert.Nil(t, body)

	assertValidationError(t, params.AddPresentation(""), "presentation")
	assert.NoError(t, params.AddPresentation("https://example.com/b.pdf"))
	assert.NoError(t, params.AddPresentation("a.txt", []byte("hello")))
	assert.NoError(t, params.AddPresentation("https://example.com/c.pdf"))

	presentations := params.Presentations()
	assert.Len(t, presentations, 3)
	assert.Equal(t, "https://example.com/b.pdf", presentations[0].URL)
	assert.False(t, presentations[0].Embedded())
	assert.Equal(t, "a.txt", presentations[1].Name)
	assert.True(t, presentations[1].Embedded())
	assert.Equal(t, "https://example.com/c.pdf", presentations[2].URL)

	body, err = params.PresentationsXML()
	assert.NoError(t, err)
	assert.Equal(t,
		`<modules><module name="presentation">`+
			`<document url="https://example.com/b.pdf"></document>`+
			`<document name="a.txt">aGVsbG8=</document>`+
			`<document url="https://example.com/c.pdf"></document>`+
			`</module></modules>`,
		string(body),
	)

	// Presentations are not query parameters.
	q, err := params.Params()
	assert.NoError(t, err)
	assert.Equal(t, "name=Meeting&meetingID=m42", q.Encode())
}

func TestJoinMeetingParameters(t *testing.T) {
	_, err := libbbb.NewJoinMeetingParameters("", "George", "ap")
	assertValidationError(t, err, "meetingID")
	_, err = libbbb.NewJoinMeetingParameters("m42", "", "ap")
	assertValidationError(t, err, "fullName")
	_, err = libbbb.NewJoinMeetingParameters("m42", "George", "")
	assertValidationError(t, err, "password")

	params, err := libbbb.NewJoinMeetingParameters("m42", "George Abitbol", "ap")
	assert.NoError(t, err)

	q, err := params.Params()
	assert.NoError(t, err)
	assert.Equal(t, "meetingID=m42&fullName=George+Abitbol&password=ap", q.Encode())

	params.CreateTime = 1483525367000
	params.UserID = "u1"
	params.SetRedirect(false)
	params.UserData = map[string]string{"bbb_auto_join_audio": "true"}

	q, err = params.Params()
	assert.NoError(t, err)
	assert.Equal(t, "meetingID=m42&fullName=George+Abitbol&password=ap&createTime=1483525367000&userID=u1&redirect=false&userdata-bbb_auto_join_audio=true", q.Encode())
}

func TestMeetingParameters(t *testing.T) {
	_, err := libbbb.NewEndMeetingParameters("m42", "")
	assertValidationError(t, err, "password")
	_, err = libbbb.NewGetMeetingInfoParameters("", "mp")
	assertValidationError(t, err, "meetingID")
	_, err = libbbb.NewIsMeetingRunningParameters("")
	assertValidationError(t, err, "meetingID")

	end, err := libbbb.NewEndMeetingParameters("m42", "mp")
	assert.NoError(t, err)
	q, err := end.Params()
	assert.NoError(t, err)
	assert.Equal(t, "meetingID=m42&password=mp", q.Encode())

	running, err := libbbb.NewIsMeetingRunningParameters("m42")
	assert.NoError(t, err)
	q, err = running.Params()
	assert.NoError(t, err)
	assert.Equal(t, "meetingID=m42", q.Encode())
}

func TestNilParameters(t *testing.T) {
	var create *libbbb.CreateMeetingParameters
	_, err := create.Params()
	assertValidationError(t, err, "parameters")

	var end *libbbb.EndMeetingParameters
	_, err = end.Params()
	assertValidationError(t, err, "parameters")

	// Only optional fields.
	var recordings *libbbb.GetRecordingsParameters
	q, err := recordings.Params()
	assert.NoError(t, err)
	assert.Empty(t, q)

	var hooks *libbbb.HooksListParameters
	q, err = hooks.Params()
	assert.NoError(t, err)
	assert.Empty(t, q)
}

func TestRecordingsParameters(t *testing.T) {
	_, err := libbbb.NewPublishRecordingsParameters(true)
	assertValidationError(t, err, "recordID")
	_, err = libbbb.NewDeleteRecordingsParameters("r1", "")
	assertValidationError(t, err, "recordID")
	_, err = libbbb.NewUpdateRecordingsParameters("r1,r2")
	assertValidationError(t, err, "recordID")

	publish, err := libbbb.NewPublishRecordingsParameters(false, "r1", "r2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, publish.RecordIDs())
	assert.False(t, publish.Publish())
	q, err := publish.Params()
	assert.NoError(t, err)
	assert.Equal(t, "recordID=r1%2Cr2&publish=false", q.Encode())

	update, err := libbbb.NewUpdateRecordingsParameters("r1")
	assert.NoError(t, err)
	update.Meta = map[string]string{"topic": "Go"}
	q, err = update.Params()
	assert.NoError(t, err)
	assert.Equal(t, "recordID=r1&meta_topic=Go", q.Encode())

	list := &libbbb.GetRecordingsParameters{MeetingID: "m1,m2", State: libbbb.RecordingStatePublished}
	q, err = list.Params()
	assert.NoError(t, err)
	assert.Equal(t, "meetingID=m1%2Cm2&state=published", q.Encode())
}

func TestSetConfigXMLParameters(t *testing.T) {
	_, err := libbbb.NewSetConfigXMLParameters("m42", "")
	assertValidationError(t, err, "configXML")
	_, err = libbbb.NewSetConfigXMLParameters("m42", "<config><a></config>")
	assertValidationError(t, err, "configXML")

	params, err := libbbb.NewSetConfigXMLParameters("m42", "<config/>")
	assert.NoError(t, err)
	q, err := params.Params()
	assert.NoError(t, err)
	assert.Equal(t, "configXML=%3Cconfig%2F%3E&meetingID=m42", q.Encode())
}

func TestHooksParameters(t *testing.T) {
	_, err := libbbb.NewHooksCreateParameters("")
	assertValidationError(t, err, "callbackURL")
	_, err = libbbb.NewHooksDestroyParameters("")
	assertValidationError(t, err, "hookID")

	create, err := libbbb.NewHooksCreateParameters("https://example.com/cb")
	assert.NoError(t, err)
	create.GetRaw = libbbb.Bool(true)
	q, err := create.Params()
	assert.NoError(t, err)
	assert.Equal(t, "callbackURL=https%3A%2F%2Fexample.com%2Fcb&getRaw=true", q.Encode())
}

func TestMetadataNames(t *testing.T) {
	for _, name := range []string{"presenter", "bbb-origin", "gl.listed", "_private", "Topic2"} {
		assert.True(t, libbbb.ValidMetadataName(name), name)
	}
	for _, name := range []string{"", "1st place", "1st", "first place", "<topic>", "-origin", ".listed", "été"} {
		assert.False(t, libbbb.ValidMetadataName(name), name)
	}

	invalid := map[string]string{"1st place": "x"}

	create, err := libbbb.NewCreateMeetingParameters("m42", "The meeting")
	assert.NoError(t, err)
	create.Meta = invalid
	_, err = create.Params()
	assertValidationError(t, err, "meta")

	list := &libbbb.GetRecordingsParameters{Meta: invalid}
	_, err = list.Params()
	assertValidationError(t, err, "meta")

	update, err := libbbb.NewUpdateRecordingsParameters("r1")
	assert.NoError(t, err)
	update.Meta = invalid
	_, err = update.Params()
	assertValidationError(t, err, "meta")

	client, err := libbbb.NewURLClient(libbbb.Config{BaseURL: base, Secret: secret})
	assert.NoError(t, err)
	_, err = client.CreateMeetingURL(create)
	assertValidationError(t, err, "meta")
}
