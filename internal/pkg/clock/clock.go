// Package clock provides wall clocks pinned to a time zone.
package clock

import (
	"fmt"
	"time"
)

// Zoned reports the current time in a fixed location.
type Zoned struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock in loc. A nil loc means UTC.
func New(loc *time.Location) *Zoned {
	if loc == nil {
		loc = time.UTC
	}
	return &Zoned{loc: loc, now: time.Now}
}

// FromName loads an IANA zone such as "Asia/Shanghai". An empty name is UTC.
func FromName(name string) (*Zoned, error) {
	if name == "" {
		return New(time.UTC), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return New(loc), nil
}

// Fixed returns a clock that always reports t, converted to loc.
func Fixed(t time.Time, loc *time.Location) *Zoned {
	c := New(loc)
	c.now = func() time.Time { return t }
	return c
}

func (c *Zoned) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Zoned) Location() *time.Location {
	return c.loc
}
