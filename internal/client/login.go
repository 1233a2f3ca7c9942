package client

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// Login checks the given server settings and stores them in the credentials file.
func Login() error {
	cfg := Config{}

	endpoint, err := readline.Line("Endpoint (e.g. https://bbb.example.com/bigbluebutton/api): ")
	if err != nil {
		return errors.Wrap(err, "could not read endpoint from stdin")
	}
	cfg.Endpoint = strings.TrimSpace(endpoint)

	secret, err := readline.Password("Shared secret: ")
	if err != nil {
		return errors.Wrap(err, "could not read secret from stdin")
	}
	cfg.Secret = strings.TrimSpace(string(secret))

	algorithm, err := readline.Line("Checksum algorithm [sha1]: ")
	if err != nil {
		return errors.Wrap(err, "could not read checksum algorithm from stdin")
	}
	cfg.Algorithm = libbbb.HashAlgorithm(algorithm)

	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}

	cmd, err := New(cfg, false)
	if err != nil {
		return err
	}

	r, err := cmd.client.GetMeetings()
	if err = cmd.check(r, err); err != nil {
		return errors.Wrap(err, "could not login")
	}
	fmt.Println("Successfully connected to " + cfg.Endpoint)

	return Save(cfg)
}
