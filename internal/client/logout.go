package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// Logout forgets the stored server settings.
func Logout() error {
	if err := Remove(); err != nil {
		return errors.Wrap(err, "could not remove credential file")
	}

	fmt.Println("Credentials removed")
	return nil
}
