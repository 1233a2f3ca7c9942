package libbbb

import (
	"crypto/sha1" // nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/pkg/errors"
)

// A HashAlgorithm is a digest algorithm accepted by the server for checksums.
type HashAlgorithm string

const (
	// SHA1 is the historical checksum algorithm, supported by all servers.
	SHA1 HashAlgorithm = "sha1"
	// SHA256 checksum algorithm.
	SHA256 HashAlgorithm = "sha256"
	// SHA384 checksum algorithm.
	SHA384 HashAlgorithm = "sha384"
	// SHA512 checksum algorithm.
	SHA512 HashAlgorithm = "sha512"

	// DefaultHashAlgorithm is the algorithm used when none is specified.
	DefaultHashAlgorithm = SHA1
)

// ParseHashAlgorithm returns the HashAlgorithm for the given name.
// An empty name returns the DefaultHashAlgorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch alg := HashAlgorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case "":
		return DefaultHashAlgorithm, nil
	case SHA1, SHA256, SHA384, SHA512:
		return alg, nil
	default:
		return "", errors.Errorf("unsupported checksum algorithm %q", name)
	}
}

func (alg HashAlgorithm) new() hash.Hash {
	switch alg {
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	default:
		return sha1.New() // nolint:gosec
	}
}

// A Signer computes request checksums with the shared secret of the server.
type Signer struct {
	Secret    string
	Algorithm HashAlgorithm
}

// Sign returns the lowercase hex digest of method + query + secret.
// The query must be the encoded query string without the checksum parameter.
func (s Signer) Sign(method, query string) string {
	h := s.Algorithm.new()
	h.Write([]byte(method))
	h.Write([]byte(query))
	h.Write([]byte(s.Secret))
	return hex.EncodeToString(h.Sum(nil))
}

// Verify returns true if checksum matches the signature of method + query.
func (s Signer) Verify(method, query, checksum string) bool {
	return strings.EqualFold(s.Sign(method, query), checksum)
}
