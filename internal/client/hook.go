package client

import (
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// HooksCreate registers a webhook, for all the meetings when meetingID is empty.
func (c *Command) HooksCreate(callbackURL, meetingID string, raw bool) error {
	params, err := libbbb.NewHooksCreateParameters(callbackURL)
	if err != nil {
		return err
	}
	params.MeetingID = meetingID
	if raw {
		params.GetRaw = libbbb.Bool(true)
	}

	r, err := c.client.HooksCreate(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not create hook")
	}

	c.message(r)
	c.printf("%s\n", r.HookID)
	return nil
}

// HooksList lists the webhooks.
func (c *Command) HooksList(meetingID string) error {
	r, err := c.client.HooksList(&libbbb.HooksListParameters{MeetingID: meetingID})
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not list hooks")
	}

	for _, h := range r.Hooks {
		scope := h.MeetingID
		if scope == "" {
			scope = "*"
		}
		c.printf("%s  %s  meeting=%s raw=%t\n", h.HookID, h.CallbackURL, scope, h.RawData)
	}
	return nil
}

// HooksDestroy removes a webhook.
func (c *Command) HooksDestroy(hookID string) error {
	params, err := libbbb.NewHooksDestroyParameters(hookID)
	if err != nil {
		return err
	}

	r, err := c.client.HooksDestroy(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not destroy hook")
	}

	c.printf("removed: %t\n", r.Removed)
	return nil
}
