package libbbb_test

import (
	"testing"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/stretchr/testify/assert"
)

const (
	secret = "639259d4-9dd8-4b25-bf01-95f9567eaf4b"
	query  = "name=Test+Meeting&meetingID=abc123&attendeePW=111222&moderatorPW=333444"
)

func TestSigner_Sign(t *testing.T) {
	data := []struct {
		algorithm libbbb.HashAlgorithm
		method    string
		query     string
		checksum  string
	}{
		{
			algorithm: libbbb.SHA1,
			method:    "create",
			query:     query,
			checksum:  "1fcbb0c4fc1f039f73aa6d697d2db9ba7f803f17",
		},
		{
			algorithm: "", // default
			method:    "create",
			query:     query,
			checksum:  "1fcbb0c4fc1f039f73aa6d697d2db9ba7f803f17",
		},
		{
			algorithm: libbbb.SHA256,
			method:    "create",
			query:     query,
			checksum:  "da9185f7f333cfdfcd6eeac32dca3777510c4c436020d8b887ba5515bd1d189e",
		},
		{
			algorithm: libbbb.SHA1,
			method:    "getMeetings",
			query:     "",
			checksum:  "2027baa7771026e9e93392f55031535d1444c41f",
		},
	}

	for _, d := range data {
		signer := libbbb.Signer{Secret: secret, Algorithm: d.algorithm}
		assert.Equal(t, d.checksum, signer.Sign(d.method, d.query))
		// Deterministic
		assert.Equal(t, signer.Sign(d.method, d.query), signer.Sign(d.method, d.query))
	}
}

func TestSigner_SignLength(t *testing.T) {
	data := map[libbbb.HashAlgorithm]int{
		libbbb.SHA1:   40,
		libbbb.SHA256: 64,
		libbbb.SHA384: 96,
		libbbb.SHA512: 128,
	}

	for alg, length := range data {
		signer := libbbb.Signer{Secret: secret, Algorithm: alg}
		assert.Len(t, signer.Sign("create", query), length, alg)
	}
}

func TestSigner_Sensitivity(t *testing.T) {
	signer := libbbb.Signer{Secret: secret}
	checksum := signer.Sign("create", query)

	assert.NotEqual(t, checksum, signer.Sign("join", query))
	assert.NotEqual(t, checksum, signer.Sign("create", query+"&record=true"))
	assert.NotEqual(t, checksum, libbbb.Signer{Secret: "another"}.Sign("create", query))
}

func TestSigner_Verify(t *testing.T) {
	signer := libbbb.Signer{Secret: secret}

	assert.True(t, signer.Verify("create", query, "1fcbb0c4fc1f039f73aa6d697d2db9ba7f803f17"))
	assert.True(t, signer.Verify("create", query, "1FCBB0C4FC1F039F73AA6D697D2DB9BA7F803F17"))
	assert.False(t, signer.Verify("create", query, "1fcbb0c4fc1f039f73aa6d697d2db9ba7f803f18"))
	assert.False(t, signer.Verify("create", query, ""))
}

func TestParseHashAlgorithm(t *testing.T) {
	alg, err := libbbb.ParseHashAlgorithm("")
	assert.NoError(t, err)
	assert.Equal(t, libbbb.SHA1, alg)

	alg, err = libbbb.ParseHashAlgorithm(" SHA256 ")
	assert.NoError(t, err)
	assert.Equal(t, libbbb.SHA256, alg)

	_, err = libbbb.ParseHashAlgorithm("md5")
	assert.EqualError(t, err, `unsupported checksum algorithm "md5"`)
}
