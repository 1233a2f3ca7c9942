package client

import (
	"os"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// DefaultConfig prints the default client configuration.
func (c *Command) DefaultConfig() error {
	r, err := c.client.GetDefaultConfigXML()
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not get default config")
	}

	c.printf("%s\n", r.RawXML)
	return nil
}

// SetConfig registers the client configuration stored in the given file for a meeting
// and prints the token to use when joining.
func (c *Command) SetConfig(meetingID, filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "could not read config")
	}

	params, err := libbbb.NewSetConfigXMLParameters(meetingID, string(content))
	if err != nil {
		return err
	}

	r, err := c.client.SetConfigXML(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not set config")
	}

	c.printf("%s\n", r.ConfigToken)
	return nil
}
