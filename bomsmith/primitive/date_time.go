package primitive

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateTime = errors.New("invalid date-time")

// DateTime is an RFC 3339 timestamp kept in its textual form.
type DateTime string

func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Format(time.RFC3339))
}

func ParseDateTime(s string) (DateTime, error) {
	d := DateTime(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

func (d DateTime) Validate() error {
	if _, err := time.Parse(time.RFC3339, string(d)); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidDateTime, string(d), err)
	}
	return nil
}

func (d DateTime) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, string(d))
}

func (d DateTime) String() string {
	return string(d)
}
