package client

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
)

// A Command runs the CLI commands against a BigBlueButton server.
type Command struct {
	client  libbbb.Client
	out     io.Writer
	verbose bool
}

// New returns a Command using the given configuration.
// The requests are logged in the `bbbc.log' file.
func New(cfg Config, verbose bool) (*Command, error) {
	client, err := libbbb.NewClient(
		&http.Client{Timeout: cfg.Timeout},
		libbbb.Config{
			BaseURL:   cfg.Endpoint,
			Secret:    cfg.Secret,
			Algorithm: cfg.Algorithm,
		},
		libbbb.WithLogger(NewLogger()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create client")
	}

	return NewWithClient(client, os.Stdout, verbose), nil
}

// NewWithClient returns a Command using the given client and writing its output to w.
func NewWithClient(client libbbb.Client, w io.Writer, verbose bool) *Command {
	return &Command{
		client:  client,
		out:     w,
		verbose: verbose,
	}
}

// Version prints the API version of the server.
func (c *Command) Version() error {
	r, err := c.client.APIVersion()
	if err = c.check(r, err); err != nil {
		return errors.Wrap(err, "could not get API version")
	}

	c.printf("API version: %s\n", r.Version)
	if r.BBBVersion != "" {
		c.printf("BigBlueButton version: %s\n", r.BBBVersion)
	}
	return nil
}

// check returns the error of the call, including a FAILED return code.
// The result is dumped in verbose mode.
func (c *Command) check(r libbbb.Result, err error) error {
	if err != nil {
		return err
	}

	if c.verbose {
		dump(c.out, r)
	}
	return r.Envelope().Err()
}

func (c *Command) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Command) message(r libbbb.Result) {
	if key := r.Envelope().MessageKey; key != "" {
		c.printf("%s: %s\n", key, r.Envelope().Message)
	}
}

func (c *Command) metadata(indent string, m libbbb.Metadata) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c.printf("%s%s: %s\n", indent, name, m[name])
	}
}

// ParseMetadata parses a list of `name=value' pairs.
func ParseMetadata(pairs []string) (map[string]string, error) {
	metadata := map[string]string{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, errors.Errorf("invalid metadata %q, expected name=value", pair)
		}
		metadata[strings.TrimSpace(name)] = value
	}
	return metadata, nil
}
