package middlewares_test

import (
	"testing"

	"github.com/mdouchement/bigbluebutton/internal/server/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestSplitChecksum(t *testing.T) {
	var tests = []struct {
		raw      string
		query    string
		checksum string
	}{
		{raw: "", query: "", checksum: ""},
		{raw: "checksum=abc", query: "", checksum: "abc"},
		{raw: "meetingID=m1&checksum=abc", query: "meetingID=m1", checksum: "abc"},
		{raw: "checksum=abc&meetingID=m1&name=a+b", query: "meetingID=m1&name=a+b", checksum: "abc"},
		{raw: "meetingID=m1", query: "meetingID=m1", checksum: ""},
		{raw: "meta_checksum=x&checksum=abc", query: "meta_checksum=x", checksum: "abc"},
	}

	for _, test := range tests {
		query, checksum := middlewares.SplitChecksum(test.raw)
		assert.Equal(t, test.query, query, test.raw)
		assert.Equal(t, test.checksum, checksum, test.raw)
	}
}
