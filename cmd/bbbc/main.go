package main

import (
	"fmt"
	"os"

	"github.com/mdouchement/bigbluebutton/internal/client"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfgFile string
	verbose bool
)

func main() {
	c := &cobra.Command{
		Use:          "bbbc",
		Short:        "BigBlueButton API client",
		Version:      fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	c.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file")
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Dump API results")

	c.AddCommand(loginCmd)
	c.AddCommand(logoutCmd)
	c.AddCommand(versionCmd)
	c.AddCommand(urlCmd)
	c.AddCommand(createCmd())
	c.AddCommand(joinCmd)
	c.AddCommand(endCmd)
	c.AddCommand(runningCmd)
	c.AddCommand(meetingsCmd)
	c.AddCommand(infoCmd)
	c.AddCommand(recordingsCmd())
	c.AddCommand(publishCmd(true))
	c.AddCommand(publishCmd(false))
	c.AddCommand(deleteRecordingsCmd)
	c.AddCommand(updateRecordingsCmd())
	c.AddCommand(defaultConfigCmd)
	c.AddCommand(setConfigCmd)
	c.AddCommand(hooksCmd())

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func command() (*client.Command, error) {
	cfg, err := client.Setup(cfgFile)
	if err != nil {
		return nil, err
	}
	return client.New(cfg, verbose)
}

func run(fn func(cmd *client.Command) error) error {
	cmd, err := command()
	if err != nil {
		return err
	}
	return fn(cmd)
}

var (
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Store the credentials of a BigBlueButton server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Login()
		},
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Logout()
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the API version of the server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.Version()
			})
		},
	}

	urlCmd = &cobra.Command{
		Use:   "url MEETING_ID FULL_NAME PASSWORD",
		Short: "Print the URL to join a meeting from a browser",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.URL(args[0], args[1], args[2])
			})
		},
	}

	joinCmd = &cobra.Command{
		Use:   "join MEETING_ID FULL_NAME PASSWORD",
		Short: "Join a meeting and print the session URL",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.Join(args[0], args[1], args[2])
			})
		},
	}

	endCmd = &cobra.Command{
		Use:   "end MEETING_ID MODERATOR_PASSWORD",
		Short: "End a meeting",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.End(args[0], args[1])
			})
		},
	}

	runningCmd = &cobra.Command{
		Use:   "running MEETING_ID",
		Short: "Check whether a meeting is running",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.Running(args[0])
			})
		},
	}

	meetingsCmd = &cobra.Command{
		Use:   "meetings",
		Short: "List the meetings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.Meetings()
			})
		},
	}

	infoCmd = &cobra.Command{
		Use:   "info MEETING_ID MODERATOR_PASSWORD",
		Short: "Describe a meeting",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.Info(args[0], args[1])
			})
		},
	}

	deleteRecordingsCmd = &cobra.Command{
		Use:   "delete-recordings RECORD_ID...",
		Short: "Delete recordings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.DeleteRecordings(args...)
			})
		},
	}

	defaultConfigCmd = &cobra.Command{
		Use:   "default-config",
		Short: "Print the default client configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.DefaultConfig()
			})
		},
	}

	setConfigCmd = &cobra.Command{
		Use:   "set-config MEETING_ID FILENAME",
		Short: "Register a client configuration for a meeting",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.SetConfig(args[0], args[1])
			})
		},
	}
)

func createCmd() *cobra.Command {
	var (
		opts client.CreateOptions
		meta []string
	)

	c := &cobra.Command{
		Use:   "create [MEETING_ID]",
		Short: "Create a meeting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) (err error) {
			if len(args) > 0 {
				opts.MeetingID = args[0]
			}
			if opts.Meta, err = client.ParseMetadata(meta); err != nil {
				return err
			}

			return run(func(cmd *client.Command) error {
				return cmd.Create(opts)
			})
		},
	}
	c.Flags().StringVarP(&opts.Name, "name", "n", "", "Meeting name")
	c.Flags().StringVarP(&opts.AttendeePassword, "attendee-password", "a", "", "Attendee password")
	c.Flags().StringVarP(&opts.ModeratorPassword, "moderator-password", "m", "", "Moderator password")
	c.Flags().StringVarP(&opts.Welcome, "welcome", "w", "", "Welcome message")
	c.Flags().BoolVarP(&opts.Record, "record", "r", false, "Record the meeting")
	c.Flags().IntVarP(&opts.Duration, "duration", "d", 0, "Maximum duration in minutes")
	c.Flags().StringArrayVarP(&opts.Presentations, "presentation", "p", nil, "Presentation URL or file (repeatable)")
	c.Flags().StringArrayVar(&meta, "meta", nil, "Metadata name=value (repeatable)")
	return c
}

func recordingsCmd() *cobra.Command {
	var (
		filters libbbb.GetRecordingsParameters
		meta    []string
	)

	c := &cobra.Command{
		Use:   "recordings",
		Short: "List the recordings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) (err error) {
			if filters.Meta, err = client.ParseMetadata(meta); err != nil {
				return err
			}

			return run(func(cmd *client.Command) error {
				return cmd.Recordings(filters)
			})
		},
	}
	c.Flags().StringVar(&filters.MeetingID, "meeting", "", "Filter by meeting IDs (comma separated)")
	c.Flags().StringVar(&filters.RecordID, "record", "", "Filter by record IDs (comma separated)")
	c.Flags().StringVar(&filters.State, "state", "", "Filter by states (comma separated or `any')")
	c.Flags().StringArrayVar(&meta, "meta", nil, "Filter by metadata name=value (repeatable)")
	return c
}

func publishCmd(publish bool) *cobra.Command {
	use, short := "publish", "Publish recordings"
	if !publish {
		use, short = "unpublish", "Hide recordings"
	}

	return &cobra.Command{
		Use:   use + " RECORD_ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.Publish(publish, args...)
			})
		},
	}
}

func updateRecordingsCmd() *cobra.Command {
	var meta []string

	c := &cobra.Command{
		Use:   "update-recordings RECORD_ID...",
		Short: "Update the metadata of recordings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			metadata, err := client.ParseMetadata(meta)
			if err != nil {
				return err
			}

			return run(func(cmd *client.Command) error {
				return cmd.UpdateRecordings(metadata, args...)
			})
		},
	}
	c.Flags().StringArrayVar(&meta, "meta", nil, "Metadata name=value, an empty value removes it (repeatable)")
	return c
}

func hooksCmd() *cobra.Command {
	var (
		meetingID string
		raw       bool
	)

	create := &cobra.Command{
		Use:   "create CALLBACK_URL",
		Short: "Register a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.HooksCreate(args[0], meetingID, raw)
			})
		},
	}
	create.Flags().StringVar(&meetingID, "meeting", "", "Only for the given meeting")
	create.Flags().BoolVar(&raw, "raw", false, "Receive the raw events")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the webhooks",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.HooksList(meetingID)
			})
		},
	}
	list.Flags().StringVar(&meetingID, "meeting", "", "Global hooks and the ones of the given meeting")

	destroy := &cobra.Command{
		Use:   "destroy HOOK_ID",
		Short: "Remove a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(cmd *client.Command) error {
				return cmd.HooksDestroy(args[0])
			})
		},
	}

	c := &cobra.Command{
		Use:   "hooks",
		Short: "Manage webhooks",
		Args:  cobra.NoArgs,
	}
	c.AddCommand(create, list, destroy)
	return c
}
