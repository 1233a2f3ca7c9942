package main

import (
	"fmt"
	"log"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/q"
	"github.com/mdouchement/bigbluebutton/internal/database"
	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
)

func main() {
	var recordings bool

	c := &coral.Command{
		Use:   "rmmeeting DATABASE MEETING_ID",
		Short: "Remove a meeting from the mock server database",
		Args:  coral.ExactArgs(2),
		RunE: func(_ *coral.Command, args []string) error {
			//
			//
			fmt.Println("Opening", args[0])
			db, err := storm.Open(args[0], database.StormCodec)
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			// Fetch meeting
			var meeting model.Meeting
			err = db.One("MeetingID", args[1], &meeting)
			if err != nil {
				if err == storm.ErrNotFound {
					fmt.Println("No meeting for this ID")
					return nil
				}
				return errors.Wrap(err, "find meeting by ID")
			}

			fmt.Println("Meeting found:", meeting.ID)

			// Deleting meeting's client configurations
			err = db.Select(q.Eq("MeetingID", meeting.MeetingID)).Delete(&model.ConfigXML{})
			if err != nil && err != storm.ErrNotFound {
				return errors.Wrap(err, "delete configurations")
			}
			fmt.Println("Configurations removed")

			// Deleting meeting's hooks
			err = db.Select(q.Eq("MeetingID", meeting.MeetingID)).Delete(&model.Hook{})
			if err != nil && err != storm.ErrNotFound {
				return errors.Wrap(err, "delete hooks")
			}
			fmt.Println("Hooks removed")

			if recordings {
				err = db.Select(q.Eq("MeetingID", meeting.MeetingID)).Delete(&model.Recording{})
				if err != nil && err != storm.ErrNotFound {
					return errors.Wrap(err, "delete recordings")
				}
				fmt.Println("Recordings removed")
			}

			// Delete meeting
			err = db.DeleteStruct(&meeting)
			if err != nil && err != storm.ErrNotFound {
				return errors.Wrap(err, "delete meeting")
			}
			fmt.Println("Meeting removed")

			return nil
		},
	}
	c.Flags().BoolVarP(&recordings, "recordings", "r", false, "Also remove the recordings of the meeting")

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
