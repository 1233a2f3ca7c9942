package client

import (
	"time"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// Recordings lists the recordings matching the given filters.
func (c *Command) Recordings(filters libbbb.GetRecordingsParameters) error {
	r, err := c.client.GetRecordings(&filters)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not list recordings")
	}

	c.message(r)
	for _, recording := range r.Recordings {
		c.printf("%s  %-30s %-11s %s (%s)\n",
			recording.RecordID,
			recording.Name,
			recording.State,
			recording.StartedAt().Format(time.RFC3339),
			recording.EndedAt().Sub(recording.StartedAt()).Round(time.Second),
		)
		for _, playback := range recording.Playback {
			c.printf("  %s: %s\n", playback.Type, playback.URL)
		}
		c.metadata("  meta_", recording.Metadata)
	}
	return nil
}

// Publish publishes or hides recordings.
func (c *Command) Publish(publish bool, recordIDs ...string) error {
	params, err := libbbb.NewPublishRecordingsParameters(publish, recordIDs...)
	if err != nil {
		return err
	}

	r, err := c.client.PublishRecordings(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not publish recordings")
	}

	c.printf("published: %t\n", r.Published)
	return nil
}

// DeleteRecordings deletes recordings.
func (c *Command) DeleteRecordings(recordIDs ...string) error {
	params, err := libbbb.NewDeleteRecordingsParameters(recordIDs...)
	if err != nil {
		return err
	}

	r, err := c.client.DeleteRecordings(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not delete recordings")
	}

	c.printf("deleted: %t\n", r.Deleted)
	return nil
}

// UpdateRecordings updates the metadata of recordings.
// An empty value removes the metadata.
func (c *Command) UpdateRecordings(meta map[string]string, recordIDs ...string) error {
	params, err := libbbb.NewUpdateRecordingsParameters(recordIDs...)
	if err != nil {
		return err
	}
	params.Meta = meta

	r, err := c.client.UpdateRecordings(params)
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not update recordings")
	}

	c.printf("updated: %t\n", r.Updated)
	return nil
}
