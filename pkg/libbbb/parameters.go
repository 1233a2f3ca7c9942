package libbbb

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	metaPrefix     = "meta_"
	userdataPrefix = "userdata-"
)

// Metadata are rendered as XML elements by the server so their names must be valid element names.
var metadataName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidMetadataName returns true if name can be used as a metadata name.
func ValidMetadataName(name string) bool {
	return metadataName.MatchString(name)
}

// Parameters is implemented by all the parameter sets of the API methods.
type Parameters interface {
	// Params validates the parameters and exports all the defined ones
	// as an ordered query.
	Params() (Query, error)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError(field, "must not be empty")
	}
	return nil
}

func identifiers(field string, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", validationError(field, "at least one identifier is required")
	}

	for _, id := range ids {
		if err := required(field, id); err != nil {
			return "", err
		}
		if strings.Contains(id, ",") {
			return "", validationError(field, "identifier must not contain a comma")
		}
	}

	return strings.Join(ids, ","), nil
}

func metadata(field string, values map[string]string) error {
	for name := range values {
		if !ValidMetadataName(name) {
			return validationError(field, "invalid metadata name "+strconv.Quote(name))
		}
	}
	return nil
}
