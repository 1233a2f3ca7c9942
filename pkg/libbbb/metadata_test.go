package libbbb_test

import (
	"encoding/xml"
	"testing"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/stretchr/testify/assert"
)

func TestMetadata_UnmarshalXML(t *testing.T) {
	var v struct {
		Metadata libbbb.Metadata `xml:"metadata"`
	}

	err := xml.Unmarshal([]byte(`<response>
  <metadata>
    <presenter> George Abitbol </presenter>
    <bbb>
      <origin>Greenlight</origin>
      <context>
        <version>2</version>
      </context>
    </bbb>
    <empty/>
  </metadata>
</response>`), &v)
	assert.NoError(t, err)

	assert.Equal(t, libbbb.Metadata{
		"presenter":           "George Abitbol",
		"bbb.origin":          "Greenlight",
		"bbb.context.version": "2",
		"empty":               "",
	}, v.Metadata)
}

func TestMetadata_MarshalXML(t *testing.T) {
	v := struct {
		XMLName  xml.Name        `xml:"response"`
		Metadata libbbb.Metadata `xml:"metadata,omitempty"`
	}{
		Metadata: libbbb.Metadata{
			"presenter": "George",
			"origin":    "bbbc",
		},
	}

	payload, err := xml.Marshal(v)
	assert.NoError(t, err)
	assert.Equal(t, `<response><metadata><origin>bbbc</origin><presenter>George</presenter></metadata></response>`, string(payload))

	v.Metadata = nil
	payload, err = xml.Marshal(v)
	assert.NoError(t, err)
	assert.Equal(t, `<response></response>`, string(payload))
}
