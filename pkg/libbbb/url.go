package libbbb

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// A URLBuilder generates signed API URLs.
type URLBuilder struct {
	base   string
	signer Signer
}

// NewURLBuilder returns a new URLBuilder for the given API root (e.g. https://bbb.example.com/bigbluebutton/api).
func NewURLBuilder(base, secret string, alg HashAlgorithm) (*URLBuilder, error) {
	if strings.TrimSpace(base) == "" {
		return nil, validationError("base_url", "must not be empty")
	}
	if secret == "" {
		return nil, validationError("secret", "must not be empty")
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse base URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, validationError("base_url", "must be an absolute URL")
	}

	if alg == "" {
		alg = DefaultHashAlgorithm
	}

	return &URLBuilder{
		base: strings.TrimRight(base, "/"),
		signer: Signer{
			Secret:    secret,
			Algorithm: alg,
		},
	}, nil
}

// BuildRoot returns the API root URL, used to get the API version.
func (b *URLBuilder) BuildRoot() string {
	return b.base
}

// Build returns the signed URL of the given method.
func (b *URLBuilder) Build(method string, query Query) string {
	q := query.Encode()
	checksum := b.Checksum(method, q)

	var sb strings.Builder
	sb.WriteString(b.base)
	sb.WriteByte('/')
	sb.WriteString(method)
	sb.WriteByte('?')
	if q != "" {
		sb.WriteString(q)
		sb.WriteByte('&')
	}
	sb.WriteString("checksum=")
	sb.WriteString(checksum)
	return sb.String()
}

// Checksum returns the checksum of the given method and encoded query.
func (b *URLBuilder) Checksum(method, query string) string {
	return b.signer.Sign(method, query)
}
