package libbbb

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type (
	// A Query is an ordered list of query parameters.
	// Map-valued parameters (metadata, user data) are expanded as one prefixed key per entry.
	// List-valued identifiers (e.g. recordID) are comma-separated as the server expects.
	Query []Param

	// A Param is a query parameter.
	Param struct {
		Key   string
		Value string
	}
)

// Add appends the given key/value pair.
func (q *Query) Add(key, value string) {
	*q = append(*q, Param{Key: key, Value: value})
}

// AddString appends the given key/value pair when value is not empty.
func (q *Query) AddString(key, value string) {
	if value == "" {
		return
	}
	q.Add(key, value)
}

// AddInt appends the given key/value pair when value is not zero.
func (q *Query) AddInt(key string, value int) {
	if value == 0 {
		return
	}
	q.Add(key, strconv.Itoa(value))
}

// AddBool appends the given key/value pair when value is defined.
func (q *Query) AddBool(key string, value *bool) {
	if value == nil {
		return
	}
	q.Add(key, strconv.FormatBool(*value))
}

// AddPrefixed appends all the given values with their names prefixed, sorted by name.
// It is used for metadata (`meta_') and user data (`userdata-').
func (q *Query) AddPrefixed(prefix string, values map[string]string) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		q.Add(prefix+name, values[name])
	}
}

// Get returns the first value associated with the given key.
func (q Query) Get(key string) string {
	for _, p := range q {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Encode encodes the query in URL encoded form, keeping the parameters order.
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Values converts the query to url.Values.
func (q Query) Values() url.Values {
	values := url.Values{}
	for _, p := range q {
		values.Add(p.Key, p.Value)
	}
	return values
}

// Bool returns a pointer to the given boolean.
// It is used to fill optional boolean parameters.
func Bool(v bool) *bool {
	return &v
}
