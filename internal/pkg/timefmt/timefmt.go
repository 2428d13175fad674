// Package timefmt converts between the internal time representation (UTC time.Time)
// and the wire formats accepted at the HTTP boundary.
package timefmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// LegacyLayout is the dd-mm-yyyyTHH:mm format written by older clients.
const LegacyLayout = "02-01-2006T15:04"

// DateLayout is used for date-only values such as start dates.
const DateLayout = "2006-01-02"

var ErrUnrecognizedFormat = errors.New("unrecognized timestamp format")

// legacyLocation is the zone Flexible uses for legacy and date-only values.
var legacyLocation = time.UTC

// SetLegacyLocation is called once at startup, before requests are served.
func SetLegacyLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	legacyLocation = loc
	return nil
}

// Parse accepts RFC 3339, the legacy layout, or a bare date and returns UTC.
// Legacy and date-only values are interpreted in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(LegacyLayout, s, loc); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrUnrecognizedFormat
}

func FormatLegacy(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(LegacyLayout)
}

// Flexible is a JSON time that decodes any format Parse understands (legacy values in
// the configured legacy zone) and always encodes RFC 3339.
type Flexible struct {
	time.Time
}

func (f *Flexible) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		f.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := Parse(s, legacyLocation)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

func (f Flexible) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.UTC().Format(time.RFC3339))
}

// Ptr returns nil for a zero value so optional request fields stay optional.
func (f *Flexible) Ptr() *time.Time {
	if f == nil || f.IsZero() {
		return nil
	}
	t := f.Time
	return &t
}
