package config

import (
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/volley/pkg/volleyerrors"
)

// Duration wraps time.Duration so config files can carry human-readable
// values like "250ms" or "10s". Plain integer nanoseconds are also accepted.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the canonical duration string.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalYAML encodes the duration as its canonical string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes either an integer nanosecond count or a duration
// string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeConfig, "invalid duration value")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeConfig, "invalid duration string").
			WithDetail("value", s)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalJSON encodes the duration as its canonical string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes either a JSON number of nanoseconds or a duration
// string.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeConfig, "invalid duration value")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return volleyerrors.Wrap(err, volleyerrors.ErrorTypeConfig, "invalid duration string").
			WithDetail("value", s)
	}
	*d = Duration(parsed)
	return nil
}
